package build

import (
	"errors"

	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
)

// wrapDecodeErr turns a decode.Cursor error into the ir.ParseError
// taxonomy: every operand-decoder failure is a missing-operand (spec.md
// §7).
func wrapDecodeErr(rec bitcode.Record, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, decode.ErrMissingOperand) {
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrMissingOperand, "%s", err)
	}
	return ir.NewParseError(rec.Op, rec.Args, err, "")
}

func toVTPRef(v decode.VTP) ir.VTPRef {
	return ir.VTPRef{Type: v.Type, Value: v.Value}
}
