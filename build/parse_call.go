package build

import (
	"github.com/vmir-go/vmir/attrset"
	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/typetab"
	"github.com/vmir-go/vmir/valuetab"
)

// parseCallOrInvoke: call/invoke -- uint(attribute-set), uint(cc), then for
// invoke uint(normal-dest), uint(unwind-dest); an explicit-function-type
// flag bit in cc (0x2000 for invoke, 0x8000 for call) precedes the callee
// and is skipped rather than interpreted; vtp(callee); then one argument
// per remaining operand, typed explicitly for varargs and implicitly
// (from the callee's signature) otherwise.
//
// The callee is resolved through its alias chain. A function-class callee
// named in the drop list (llvm.lifetime.start/end, llvm.prefetch,
// llvm.va_end) produces no instruction at all and does not advance the
// value counter — callers see it exactly as if the record had never been
// emitted.
func (c *Context) parseCallOrInvoke(rec bitcode.Record, cur *decode.Cursor, isInvoke bool) error {
	attrSetRaw, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}
	cc, err := cur.TakeUint()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	normalDest, unwindDest := -1, -1
	if isInvoke {
		n, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		u, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		normalDest, unwindDest = int(n), int(u)
		if cc&0x2000 != 0 {
			if err := cur.Skip(1); err != nil {
				return wrapDecodeErr(rec, err)
			}
		}
	} else {
		if cc&0x8000 != 0 {
			if err := cur.Skip(1); err != nil {
				return wrapDecodeErr(rec, err)
			}
		}
	}

	fnidx, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	fn, err := c.Unit.Values.Function(fnidx.Value)
	if err != nil {
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrBadCallee, "%s", err)
	}

	var fnTypeID typetab.ID
	switch fn.Class {
	case valuetab.Function:
		if c.Unit.DropIntrinsics[fn.FuncName] {
			return nil
		}
		fnTypeID = typetab.ID(fn.Type)
	case valuetab.Temporary, valuetab.RegFrame:
		fnTypeID = c.Unit.Types.Pointee(typetab.ID(fn.Type))
	default:
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrNonFunctionCall, "call via value of class %v not supported", fn.Class)
	}

	fnty := c.Unit.Types.Get(fnTypeID)
	if fnty.Code != typetab.Function {
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrNonFunctionCall, "call to non-function type %v", fnty.Code)
	}

	if cc&(1<<14) != 0 {
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrMustTailUnsupported, "must-tail call to %v", fnty.Code)
	}

	numParams := len(fnty.Params)
	var args []ir.CallArg
	n := 0
	for cur.Len() > 0 {
		if n >= numParams {
			v, err := cur.TakeVTP()
			if err != nil {
				return wrapDecodeErr(rec, err)
			}
			args = append(args, ir.CallArg{Value: v.Value, Type: v.Type})
		} else {
			v, err := cur.TakeValue(int(fnty.Params[n]))
			if err != nil {
				return wrapDecodeErr(rec, err)
			}
			args = append(args, ir.CallArg{Value: v, Type: int(fnty.Params[n])})
		}
		n++
	}

	if isInvoke {
		if err := c.linkEdge(rec, normalDest); err != nil {
			return err
		}
		if err := c.linkEdge(rec, unwindDest); err != nil {
			return err
		}
	}

	var i *ir.CallInstr
	if isInvoke {
		i = ir.NewInvokeInstr()
	} else {
		i = ir.NewCallInstr()
	}
	i.Callee = toVTPRef(fnidx)
	i.NormalDest, i.UnwindDest = normalDest, unwindDest
	i.IsInvoke = isInvoke
	i.Args = args

	if set, ok := c.Unit.AttrSets.Lookup(attrSetRaw); ok {
		for _, a := range set.Attrs {
			if a.Index <= 0 {
				continue
			}
			arg := a.Index - 1
			if arg >= len(i.Args) {
				continue
			}
			if !attrset.HasFlag(a.Flags, attrset.ByVal) {
				continue
			}
			ty := c.Unit.Types.Get(typetab.ID(i.Args[arg].Type))
			if ty.Code != typetab.Pointer {
				return ir.NewParseError(rec.Op, rec.Args, ir.ErrByValNonPointer, "byval on non-pointer %v", ty.Code)
			}
			i.Args[arg].CopySize = c.Unit.Types.Sizeof(ty.Pointee)
		}
	}

	c.currentBlock().Append(i)

	retty := c.Unit.Types.Get(fnty.Return)
	if retty.Code == typetab.Void {
		return nil
	}
	allocateResult(c, int(fnty.Return), i)
	return nil
}
