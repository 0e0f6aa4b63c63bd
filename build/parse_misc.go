package build

import (
	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/typetab"
)

// parseVSelect: select -- vtp(true-value), value(same type, false-value),
// vtp(predicate). Result type is the true-value's type.
func (c *Context) parseVSelect(rec bitcode.Record, cur *decode.Cursor) error {
	trueVal, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	falseVal, err := cur.TakeValue(trueVal.Type)
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	pred, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewSelectInstr()
	i.True, i.False, i.Pred = toVTPRef(trueVal), falseVal, toVTPRef(pred)
	allocateResult(c, trueVal.Type, i)
	c.currentBlock().Append(i)
	return nil
}

// parseVAArg: vaarg -- uint(src-type), value(src-type), uint(dst-type).
func (c *Context) parseVAArg(rec bitcode.Record, cur *decode.Cursor) error {
	srcType, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	val, err := cur.TakeValue(int(srcType))
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	dstType, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewVAArgInstr()
	i.Value, i.SrcType, i.DstType = val, int(srcType), int(dstType)
	allocateResult(c, int(dstType), i)
	c.currentBlock().Append(i)
	return nil
}

// parseExtractVal: extractval -- vtp(base), then one uint index per
// remaining operand, walking struct/array element types. Result type is
// whatever the walk lands on.
func (c *Context) parseExtractVal(rec bitcode.Record, cur *decode.Cursor) error {
	base, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	var indices []int
	currentType := typetab.ID(base.Type)
	for cur.Len() > 0 {
		idx, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		indices = append(indices, int(idx))

		ty := c.Unit.Types.Get(currentType)
		switch ty.Code {
		case typetab.Struct:
			if int(idx) >= len(ty.Elems) {
				return ir.NewParseError(rec.Op, rec.Args, ir.ErrGEPBadIndex, "index %d out of bounds (%d elements)", idx, len(ty.Elems))
			}
			currentType = ty.Elems[idx].Type
		case typetab.Array:
			currentType = ty.Element
		default:
			return ir.NewParseError(rec.Op, rec.Args, ir.ErrGEPBadType, "cannot index type %v in extractval", ty.Code)
		}
	}

	i := ir.NewExtractValInstr()
	i.Base, i.Indices = toVTPRef(base), indices
	allocateResult(c, int(currentType), i)
	c.currentBlock().Append(i)
	return nil
}

// parseInsertVal: insertval -- vtp(src), vtp(replacement), then one uint
// index per remaining operand. Result type is the src value's type.
func (c *Context) parseInsertVal(rec bitcode.Record, cur *decode.Cursor) error {
	src, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	replacement, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	var indices []int
	for cur.Len() > 0 {
		idx, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		indices = append(indices, int(idx))
	}

	i := ir.NewInsertValInstr()
	i.Src, i.Replacement, i.Indices = toVTPRef(src), toVTPRef(replacement), indices
	allocateResult(c, src.Type, i)
	c.currentBlock().Append(i)
	return nil
}

// parseLandingPad: landingpad -- uint(type) [, vtp(personality) for the
// legacy encoding, read and discarded], uint(is-cleanup), uint(num-clauses),
// then num-clauses pairs of (uint(clause-value), uint(is-catch)).
func (c *Context) parseLandingPad(rec bitcode.Record, cur *decode.Cursor, legacy bool) error {
	typ, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	if legacy {
		if _, err := cur.TakeVTP(); err != nil {
			return wrapDecodeErr(rec, err)
		}
	}
	isCleanup, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	numClauses, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	clauses := make([]ir.LandingPadClause, 0, numClauses)
	for j := uint64(0); j < numClauses; j++ {
		clauseVal, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		isCatch, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		clauses = append(clauses, ir.LandingPadClause{ClauseVal: clauseVal, IsCatch: isCatch != 0})
	}

	i := ir.NewLandingPadInstr()
	i.Type, i.IsCleanup, i.Clauses = int(typ), isCleanup != 0, clauses
	allocateResult(c, int(typ), i)
	c.currentBlock().Append(i)
	return nil
}
