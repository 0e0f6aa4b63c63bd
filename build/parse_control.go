package build

import (
	"sort"

	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/typetab"
	"github.com/vmir-go/vmir/valuetab"
)

// parseBr: br -- uint(true-block) [, uint(false-block), value(i1 cond)].
// Terminator; void result.
func (c *Context) parseBr(rec bitcode.Record, cur *decode.Cursor) error {
	trueBlock, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewBrInstr()
	i.TrueBlock = int(trueBlock)

	if cur.Len() > 0 {
		falseBlock, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		i1 := c.Unit.Types.FindIntByWidth(1)
		cond, err := cur.TakeValue(int(i1))
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		i.Conditional = true
		i.FalseBlock = int(falseBlock)
		i.Cond = ir.VTPRef{Type: int(i1), Value: cond}
	}

	if err := c.linkEdge(rec, i.TrueBlock); err != nil {
		return err
	}
	if i.Conditional {
		if err := c.linkEdge(rec, i.FalseBlock); err != nil {
			return err
		}
	}

	c.currentBlock().Append(i)
	return nil
}

// parsePhi: phi -- uint(type), then pairs of (signed-value, uint(pred))
// for as long as operands remain. Incoming edges are sorted by predecessor
// and deduplicated, keeping the first occurrence of each predecessor.
func (c *Context) parsePhi(rec bitcode.Record, cur *decode.Cursor) error {
	typ, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	var incoming []ir.PhiIncoming
	for cur.Len() >= 2 {
		val, err := cur.TakeValueSigned(int(typ))
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		pred, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		incoming = append(incoming, ir.PhiIncoming{Pred: int(pred), Value: val})
	}

	sort.SliceStable(incoming, func(a, b int) bool {
		return incoming[a].Pred < incoming[b].Pred
	})
	if len(incoming) > 0 {
		w := 1
		for j := 1; j < len(incoming); j++ {
			if incoming[j].Pred == incoming[w-1].Pred {
				continue
			}
			incoming[w] = incoming[j]
			w++
		}
		incoming = incoming[:w]
	}

	i := ir.NewPhiInstr()
	i.Type, i.Incoming = int(typ), incoming
	allocateResult(c, int(typ), i)
	c.currentBlock().Append(i)
	return nil
}

// parseSwitch: switch -- uint(cond-type), value(cond), uint(default-block),
// then pairs of (uint(case-value), uint(target-block)). Case values are
// masked to the condition type's bit width (the 64-bit case reuses the
// original's ~1 mask rather than an all-ones mask) and the case list is
// sorted by masked value.
func (c *Context) parseSwitch(rec bitcode.Record, cur *decode.Cursor) error {
	condType, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	value, err := cur.TakeValue(int(condType))
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	defBlock, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	width := c.Unit.Types.Bitwidth(typetab.ID(condType))
	var mask uint64
	if width == 64 {
		mask = ^uint64(1)
	} else {
		mask = (uint64(1) << uint(width)) - 1
	}

	var cases []ir.SwitchCase
	for cur.Len() >= 2 {
		caseVal, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		target, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}

		v := c.Unit.Values.Get(valuetab.ID(caseVal))
		if v.Class != valuetab.Constant {
			return ir.NewParseError(rec.Op, rec.Args, ir.ErrSwitchNonConstantCase, "case value is not a constant")
		}
		if int(v.Type) != int(condType) {
			return ir.NewParseError(rec.Op, rec.Args, ir.ErrSwitchTypeMismatch, "case type %d != condition type %d", v.Type, condType)
		}
		cases = append(cases, ir.SwitchCase{
			Value:  c.Unit.Values.GetConst64(valuetab.ID(caseVal)) & mask,
			Target: int(target),
		})
	}
	sort.SliceStable(cases, func(a, b int) bool { return cases[a].Value < cases[b].Value })

	if err := c.linkEdge(rec, int(defBlock)); err != nil {
		return err
	}
	for _, cs := range cases {
		if err := c.linkEdge(rec, cs.Target); err != nil {
			return err
		}
	}

	i := ir.NewSwitchInstr()
	i.CondType, i.Value, i.Default, i.Cases = int(condType), value, int(defBlock), cases
	c.currentBlock().Append(i)
	return nil
}

// parseResume: resume -- a single vtp operand, stored in the first of the
// reserved value slots (spec.md §9 open question: the remaining slots stay
// reserved but unused, matching observed behavior rather than "fixing" it).
func (c *Context) parseResume(rec bitcode.Record, cur *decode.Cursor) error {
	v, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	i := ir.NewResumeInstr()
	i.Values[0] = toVTPRef(v)
	i.NumValues = 1
	c.currentBlock().Append(i)
	return nil
}
