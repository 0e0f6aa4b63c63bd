package printer

import (
	"testing"

	"github.com/vmir-go/vmir/ir"
)

func sampleFunction() *ir.Function {
	fn := &ir.Function{Name: "add_one", DeclaredBlockCnt: 1}
	blk := &ir.Block{ID: 0, Function: fn}
	fn.Blocks = []*ir.Block{blk}

	binop := ir.NewBinopInstr()
	binop.LHS = ir.VTPRef{Type: 3, Value: 0}
	binop.RHS = 1
	binop.Op = 0
	ir.SetResult(binop, 2)
	blk.Append(binop)

	ret := ir.NewRetInstr()
	ret.Value, ret.HasValue = ir.VTPRef{Type: 3, Value: 2}, true
	blk.Append(ret)

	return fn
}

func TestFunctionIsDeterministic(t *testing.T) {
	fn := sampleFunction()
	first := Function(fn)
	second := Function(fn)
	if first != second {
		t.Fatalf("Function output changed between calls:\n%s\n---\n%s", first, second)
	}
}

func TestFunctionRendersExpectedMnemonics(t *testing.T) {
	fn := sampleFunction()
	out := Function(fn)
	want := "function add_one\nbb0:\n  v2 = add t3:v0, v1\n  ret t3:v2\n"
	if out != want {
		t.Fatalf("Function output =\n%q\nwant\n%q", out, want)
	}
}

func TestInstructionUnreachable(t *testing.T) {
	if got := Instruction(ir.NewUnreachableInstr()); got != "unreachable" {
		t.Fatalf("Instruction(unreachable) = %q", got)
	}
}

func TestInstructionUnconditionalBr(t *testing.T) {
	br := ir.NewBrInstr()
	br.TrueBlock = 5
	if got := Instruction(br); got != "br bb5" {
		t.Fatalf("Instruction(br) = %q, want %q", got, "br bb5")
	}
}
