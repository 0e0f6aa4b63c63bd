package build

import (
	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
)

// Handle dispatches one function-body record to the correct parser (C4).
// It is aware of the legacy-vs-current encodings for store, gep,
// landingpad, and the atomic load/store variants (which parse identically
// to their non-atomic counterparts for IR purposes), and advances the
// block cursor after a terminator is appended. Unknown opcodes abort with
// ErrUnsupportedOpcode.
func (c *Context) Handle(rec bitcode.Record) error {
	cur := decode.NewCursor(c.Unit.Values, rec.Args)

	switch bitcode.Opcode(rec.Op) {
	case bitcode.DeclareBlocks:
		if len(rec.Args) < 1 {
			return ir.NewParseError(rec.Op, rec.Args, ir.ErrMissingOperand, "declare-blocks needs a count")
		}
		return c.DeclareBlocks(int(rec.Args[0]))

	case bitcode.InstRet:
		if err := c.parseRet(rec, cur); err != nil {
			return err
		}
		c.advance()
		return nil

	case bitcode.InstBinop:
		return c.parseBinop(rec, cur)

	case bitcode.InstCast:
		return c.parseCast(rec, cur)

	case bitcode.InstLoad, bitcode.InstLoadAtomic:
		return c.parseLoad(rec, cur)

	case bitcode.InstStoreOld, bitcode.InstStoreAtomicOld:
		return c.parseStore(rec, cur, true)

	case bitcode.InstStore, bitcode.InstStoreAtomic:
		return c.parseStore(rec, cur, false)

	case bitcode.InstInboundsGEPOld, bitcode.InstGEPOld:
		return c.parseGEP(rec, cur, false)

	case bitcode.InstGEP:
		return c.parseGEP(rec, cur, true)

	case bitcode.InstCmp2:
		return c.parseCmp2(rec, cur)

	case bitcode.InstBr:
		if err := c.parseBr(rec, cur); err != nil {
			return err
		}
		c.advance()
		return nil

	case bitcode.InstPhi:
		return c.parsePhi(rec, cur)

	case bitcode.InstInvoke:
		if err := c.parseCallOrInvoke(rec, cur, true); err != nil {
			return err
		}
		c.advance()
		return nil

	case bitcode.InstCall:
		return c.parseCallOrInvoke(rec, cur, false)

	case bitcode.InstSwitch:
		if err := c.parseSwitch(rec, cur); err != nil {
			return err
		}
		c.advance()
		return nil

	case bitcode.InstAlloca:
		return c.parseAlloca(rec, cur)

	case bitcode.InstUnreachable:
		c.parseUnreachable()
		c.advance()
		return nil

	case bitcode.InstVSelect:
		return c.parseVSelect(rec, cur)

	case bitcode.InstVAArg:
		return c.parseVAArg(rec, cur)

	case bitcode.InstExtractVal:
		return c.parseExtractVal(rec, cur)

	case bitcode.InstLandingPadOld:
		return c.parseLandingPad(rec, cur, true)

	case bitcode.InstLandingPad:
		return c.parseLandingPad(rec, cur, false)

	case bitcode.InstInsertVal:
		return c.parseInsertVal(rec, cur)

	case bitcode.InstResume:
		if err := c.parseResume(rec, cur); err != nil {
			return err
		}
		c.advance()
		return nil

	default:
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrUnsupportedOpcode, "opcode %d", rec.Op)
	}
}
