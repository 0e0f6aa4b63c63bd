package build

import (
	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
)

// parseRet: ret -- 0 or 1 vtp operand, void result, terminator.
func (c *Context) parseRet(rec bitcode.Record, cur *decode.Cursor) error {
	i := ir.NewRetInstr()
	if cur.Len() > 0 {
		v, err := cur.TakeVTP()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		i.Value, i.HasValue = toVTPRef(v), true
	}
	c.currentBlock().Append(i)
	return nil
}

// parseUnreachable: unreachable -- no operands, void, terminator.
func (c *Context) parseUnreachable() {
	c.currentBlock().Append(ir.NewUnreachableInstr())
}

// parseBinop: binop -- vtp(lhs), value(same type), uint(op). Result type
// is the LHS type.
func (c *Context) parseBinop(rec bitcode.Record, cur *decode.Cursor) error {
	lhs, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	rhs, err := cur.TakeValue(lhs.Type)
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	op, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewBinopInstr()
	i.LHS, i.RHS, i.Op = toVTPRef(lhs), rhs, int(op)
	allocateResult(c, lhs.Type, i)
	c.currentBlock().Append(i)
	return nil
}

// parseCast: cast -- vtp(value), uint(dst-type), uint(op). Result type is
// dst-type.
func (c *Context) parseCast(rec bitcode.Record, cur *decode.Cursor) error {
	v, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	dst, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	op, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewCastInstr()
	i.Value, i.DstType, i.Op = toVTPRef(v), int(dst), int(op)
	allocateResult(c, int(dst), i)
	c.currentBlock().Append(i)
	return nil
}

// parseCmp2: cmp2 -- vtp(lhs), value(same), uint(pred). Result is a 1-bit
// integer.
func (c *Context) parseCmp2(rec bitcode.Record, cur *decode.Cursor) error {
	lhs, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	rhs, err := cur.TakeValue(lhs.Type)
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	pred, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewCmp2Instr()
	i.LHS, i.RHS, i.Pred = toVTPRef(lhs), rhs, int(pred)
	allocateResult(c, int(c.Unit.Types.FindIntByWidth(1)), i)
	c.currentBlock().Append(i)
	return nil
}
