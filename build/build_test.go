package build

import (
	"testing"

	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/typetab"
	"github.com/vmir-go/vmir/valuetab"
)

// S1: binop + ret, both referencing already-defined values.
func TestBinopAndRet(t *testing.T) {
	unit := ir.NewUnit()
	i32 := typetab.ID(3)
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: 10})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: 20})

	c := NewContext(unit, "f", 0)
	if err := c.DeclareBlocks(1); err != nil {
		t.Fatalf("DeclareBlocks: %v", err)
	}

	if err := c.Handle(bitcode.Record{Op: int(bitcode.InstBinop), Args: []int64{2, 1, 0}}); err != nil {
		t.Fatalf("binop: %v", err)
	}
	if err := c.Handle(bitcode.Record{Op: int(bitcode.InstRet), Args: []int64{1}}); err != nil {
		t.Fatalf("ret: %v", err)
	}

	blk := c.Func.Blocks[0]
	if len(blk.Instrs) != 2 {
		t.Fatalf("got %d instructions, want 2", len(blk.Instrs))
	}
	binop, ok := blk.Instrs[0].(*ir.BinopInstr)
	if !ok {
		t.Fatalf("instr 0 is %T, want *ir.BinopInstr", blk.Instrs[0])
	}
	if binop.LHS.Value != 0 || binop.RHS != 1 || binop.Op != 0 {
		t.Errorf("binop = %+v", binop)
	}
	resID, hasRes := binop.Result()
	if !hasRes || resID != 2 {
		t.Errorf("binop result = (%d, %v), want (2, true)", resID, hasRes)
	}

	ret, ok := blk.Instrs[1].(*ir.RetInstr)
	if !ok {
		t.Fatalf("instr 1 is %T, want *ir.RetInstr", blk.Instrs[1])
	}
	if !ret.HasValue || ret.Value.Value != 2 {
		t.Errorf("ret = %+v", ret)
	}
	if !blk.Sealed {
		t.Error("block not sealed after terminator")
	}
}

// S3: GEP walking pointer -> struct -> inner struct -> i64.
func TestGEPIntoNestedStruct(t *testing.T) {
	unit := ir.NewUnit()
	i32, i64 := typetab.ID(3), typetab.ID(4)

	inner := unit.Types.Make(typetab.Type{
		Code:  typetab.Struct,
		Elems: []typetab.StructElem{{Type: i64}, {Type: typetab.ID(2)}},
	})
	outer := unit.Types.Make(typetab.Type{
		Code:  typetab.Struct,
		Elems: []typetab.StructElem{{Type: i32}, {Type: inner}},
	})
	basePtr := unit.Types.MakePointer(outer, 1)

	unit.Values.Alloc(valuetab.Value{Class: valuetab.Temporary, Type: int(basePtr)})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: 0})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: 1})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: 0})

	c := NewContext(unit, "f", 0)
	if err := c.DeclareBlocks(1); err != nil {
		t.Fatalf("DeclareBlocks: %v", err)
	}

	if err := c.Handle(bitcode.Record{Op: int(bitcode.InstGEP), Args: []int64{4, 3, 2, 1}}); err != nil {
		t.Fatalf("gep: %v", err)
	}

	gep := c.Func.Blocks[0].Instrs[0].(*ir.GEPInstr)
	resID, _ := gep.Result()
	resTy := unit.Types.Get(typetab.ID(unit.Values.Get(resID).Type))
	if resTy.Code != typetab.Pointer || resTy.Pointee != i64 || resTy.AddrSpace != 1 {
		t.Errorf("gep result type = %+v, want pointer-to-i64 addrspace 1", resTy)
	}
}

// S4: switch on an i8 condition masks and sorts cases, keeping duplicates.
func TestSwitchMasksAndSorts(t *testing.T) {
	unit := ir.NewUnit()
	i8 := typetab.ID(2)

	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i8), ConstBits: 0xFF})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i8), ConstBits: 1})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i8), ConstBits: 1})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i8), ConstBits: 5})

	c := NewContext(unit, "f", 0)
	if err := c.DeclareBlocks(5); err != nil {
		t.Fatalf("DeclareBlocks: %v", err)
	}

	// condType=2(i8), cond-value delta=1, default=0, (0,2), (1,3), (1,4)
	err := c.Handle(bitcode.Record{
		Op:   int(bitcode.InstSwitch),
		Args: []int64{2, 1, 0, 0, 2, 1, 3, 1, 4},
	})
	if err != nil {
		t.Fatalf("switch: %v", err)
	}

	sw := c.Func.Blocks[0].Instrs[0].(*ir.SwitchInstr)
	want := []ir.SwitchCase{{Value: 1, Target: 3}, {Value: 1, Target: 4}, {Value: 0xFF, Target: 2}}
	if len(sw.Cases) != len(want) {
		t.Fatalf("got %d cases, want %d: %+v", len(sw.Cases), len(want), sw.Cases)
	}
	for i, c := range sw.Cases {
		if c != want[i] {
			t.Errorf("case %d = %+v, want %+v", i, c, want[i])
		}
	}
}

// S5: calling a dropped intrinsic produces no instruction and does not
// advance the value counter.
func TestCallToDroppedIntrinsic(t *testing.T) {
	unit := ir.NewUnit()
	voidType := typetab.ID(0)
	fnType := unit.Types.Make(typetab.Type{Code: typetab.Function, Return: voidType})
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Function, Type: int(fnType), FuncName: "llvm.lifetime.start"})

	c := NewContext(unit, "f", 0)
	if err := c.DeclareBlocks(1); err != nil {
		t.Fatalf("DeclareBlocks: %v", err)
	}

	before := unit.Values.NextValue()
	if err := c.Handle(bitcode.Record{Op: int(bitcode.InstCall), Args: []int64{0, 0, 1}}); err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := len(c.Func.Blocks[0].Instrs); got != 0 {
		t.Errorf("got %d instructions, want 0", got)
	}
	if unit.Values.NextValue() != before {
		t.Errorf("NextValue changed from %d to %d", before, unit.Values.NextValue())
	}
}

// S2-style: PHI incoming nodes with a shared predecessor collapse to the
// first occurrence after the sort; the forward reference resolves
// arithmetically even though its slot isn't defined yet.
func TestPhiDedupKeepsFirstOccurrence(t *testing.T) {
	unit := ir.NewUnit()
	i32 := typetab.ID(3)
	for i := 0; i < 5; i++ {
		unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: uint64(i)})
	}
	// next_value == 5 now.

	c := NewContext(unit, "f", 0)
	if err := c.DeclareBlocks(1); err != nil {
		t.Fatalf("DeclareBlocks: %v", err)
	}

	// type=i32(3); forward (pred=0, value=10, raw=11 sign-rotated); backward
	// (pred=0, value=3, raw=4 sign-rotated).
	err := c.Handle(bitcode.Record{
		Op:   int(bitcode.InstPhi),
		Args: []int64{3, 11, 0, 4, 0},
	})
	if err != nil {
		t.Fatalf("phi: %v", err)
	}

	phi := c.Func.Blocks[0].Instrs[0].(*ir.PhiInstr)
	if len(phi.Incoming) != 1 {
		t.Fatalf("got %d incoming nodes, want 1: %+v", len(phi.Incoming), phi.Incoming)
	}
	if phi.Incoming[0].Pred != 0 || phi.Incoming[0].Value != 10 {
		t.Errorf("incoming = %+v, want {Pred:0 Value:10}", phi.Incoming[0])
	}
}
