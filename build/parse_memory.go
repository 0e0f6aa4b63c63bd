package build

import (
	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/decode"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/typetab"
	"github.com/vmir-go/vmir/valuetab"
)

// parseLoad: load -- vtp(ptr) [, uint(explicit-type)]. Result is the
// explicit type if present, otherwise the pointee of ptr's type.
func (c *Context) parseLoad(rec bitcode.Record, cur *decode.Cursor) error {
	ptr, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewLoadInstr()
	i.Ptr = toVTPRef(ptr)

	var rtype typetab.ID
	if cur.Len() > 0 {
		explicit, err := cur.TakeUint()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		i.HasExplicit, i.ExplicitType = true, int(explicit)
		rtype = typetab.ID(explicit)
	} else {
		rtype = c.Unit.Types.Pointee(typetab.ID(ptr.Type))
	}

	allocateResult(c, int(rtype), i)
	c.currentBlock().Append(i)
	return nil
}

// parseStore: store -- new encoding reads vtp(ptr), vtp(value); the old
// encoding reads vtp(ptr), value(pointee type of ptr). Void result.
func (c *Context) parseStore(rec bitcode.Record, cur *decode.Cursor, legacy bool) error {
	ptr, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	i := ir.NewStoreInstr()
	i.Ptr = toVTPRef(ptr)

	if legacy {
		pointee := c.Unit.Types.Pointee(typetab.ID(ptr.Type))
		val, err := cur.TakeValue(int(pointee))
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		i.Value = ir.VTPRef{Type: int(pointee), Value: val}
	} else {
		val, err := cur.TakeVTP()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		i.Value = toVTPRef(val)
	}
	c.currentBlock().Append(i)
	return nil
}

// parseGEP: gep -- skip 2 leading elements for the legacy encodings,
// vtp(base), then repeat vtp(index). Walks the base type along the index
// list: pointer -> pointee, struct -> constant(index) field (non-constant
// or out-of-range aborts), array -> element type, anything else aborts
// with gep-bad-type. The result is pointer-to(final-type, addrspace=1).
func (c *Context) parseGEP(rec bitcode.Record, cur *decode.Cursor, currentEncoding bool) error {
	if !currentEncoding {
		if err := cur.Skip(2); err != nil {
			return wrapDecodeErr(rec, err)
		}
	}

	base, err := cur.TakeVTP()
	if err != nil {
		return wrapDecodeErr(rec, err)
	}

	var indices []ir.GEPIndex
	currentType := typetab.ID(base.Type)
	for cur.Len() > 0 {
		idx, err := cur.TakeVTP()
		if err != nil {
			return wrapDecodeErr(rec, err)
		}
		indices = append(indices, ir.GEPIndex{Value: idx.Value, ContainerType: int(currentType)})

		ty := c.Unit.Types.Get(currentType)
		switch ty.Code {
		case typetab.Pointer:
			currentType = ty.Pointee
		case typetab.Struct:
			v := c.Unit.Values.Get(idx.Value)
			if v.Class != valuetab.Constant {
				return ir.NewParseError(rec.Op, rec.Args, ir.ErrGEPBadIndex, "struct index value is not a constant")
			}
			elem := int(c.Unit.Values.GetConst32(idx.Value))
			if elem < 0 || elem >= len(ty.Elems) {
				return ir.NewParseError(rec.Op, rec.Args, ir.ErrGEPBadIndex, "index %d out of bounds (%d elements)", elem, len(ty.Elems))
			}
			currentType = ty.Elems[elem].Type
		case typetab.Array:
			currentType = ty.Element
		default:
			return ir.NewParseError(rec.Op, rec.Args, ir.ErrGEPBadType, "cannot index type %v", ty.Code)
		}
	}

	i := ir.NewGEPInstr()
	i.Base, i.Indices = toVTPRef(base), indices
	resultType := c.Unit.Types.MakePointer(currentType, 1)
	allocateResult(c, int(resultType), i)
	c.currentBlock().Append(i)
	return nil
}

// parseAlloca: alloca -- exactly 4 args: rtype, count-type, count-value,
// flags. Result is pointer-to(rtype) when flags bit 6 (explicit type) is
// set, else rtype itself; element size is sizeof(pointee of rtype) in
// that case.
func (c *Context) parseAlloca(rec bitcode.Record, cur *decode.Cursor) error {
	if cur.Len() != 4 {
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrAllocaArgCount, "want 4 args, got %d", cur.Len())
	}
	rtypeArg, _ := cur.TakeUint()
	countType, _ := cur.TakeUint()
	countValue, _ := cur.TakeUint()
	flags, _ := cur.TakeUint()

	i := ir.NewAllocaInstr()
	i.CountType, i.CountValue = int(countType), valuetab.ID(countValue)

	rtype := typetab.ID(rtypeArg)
	if flags&(1<<6) != 0 {
		i.ElementSize = c.Unit.Types.Sizeof(rtype)
		rtype = c.Unit.Types.MakePointer(rtype, 1)
		i.IsExplicitPtr = true
	} else {
		pointee := c.Unit.Types.Pointee(rtype)
		i.ElementSize = c.Unit.Types.Sizeof(pointee)
	}
	i.ResultType = int(rtype)
	i.Alignment = decodeLLVMAlignment(int(flags&0x1f), 4)

	allocateResult(c, int(rtype), i)
	c.currentBlock().Append(i)
	return nil
}

// decodeLLVMAlignment decodes an LLVM-bitcode-style alignment field: 0
// means "use default", anything else is log2(align)+1.
func decodeLLVMAlignment(encoded, def int) int {
	if encoded == 0 {
		return def
	}
	return 1 << uint(encoded-1)
}
