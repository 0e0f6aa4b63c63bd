// Package printer implements the Textual Dump (C7): a deterministic,
// byte-stable rendering of a parsed function body, used by cmd/vmirdump
// and by tests that want to assert on parser output without depending on
// struct layout.
package printer

import (
	"fmt"
	"strings"

	"github.com/vmir-go/vmir/ir"
)

var binopMnemonic = map[int]string{
	0: "add", 1: "sub", 2: "mul", 3: "udiv", 4: "sdiv", 5: "urem", 6: "srem",
	7: "shl", 8: "lshr", 9: "ashr", 10: "and", 11: "or", 12: "xor",
	13: "rol", 14: "ror",
}

var castMnemonic = map[int]string{
	0: "trunc", 1: "zext", 2: "sext", 3: "fptoui", 4: "fptosi", 5: "uitofp",
	6: "sitofp", 7: "fptrunc", 8: "fpext", 9: "ptrtoint", 10: "inttoptr",
	11: "bitcast",
}

var predMnemonic = map[int]string{
	0: "fcmp_false", 1: "fcmp_oeq", 2: "fcmp_ogt", 3: "fcmp_oge", 4: "fcmp_olt",
	5: "fcmp_ole", 6: "fcmp_one", 7: "fcmp_ord", 8: "fcmp_uno", 9: "fcmp_ueq",
	10: "fcmp_ugt", 11: "fcmp_uge", 12: "fcmp_ult", 13: "fcmp_ule",
	14: "fcmp_une", 15: "fcmp_true",
	32: "icmp_eq", 33: "icmp_ne", 34: "icmp_ugt", 35: "icmp_uge",
	36: "icmp_ult", 37: "icmp_ule", 38: "icmp_sgt", 39: "icmp_sge",
	40: "icmp_slt", 41: "icmp_sle",
}

func mnemonic(table map[int]string, op int) string {
	if s, ok := table[op]; ok {
		return s
	}
	return fmt.Sprintf("op%d", op)
}

func vtp(v ir.VTPRef) string {
	return fmt.Sprintf("t%d:v%d", v.Type, v.Value)
}

// Function renders fn's basic blocks and instructions in declaration
// order: a "function NAME" header, then a "bbN:" label line per block
// followed by that block's instructions, one per line, each prefixed with
// its result slot when it has one. The output depends only on fn's contents,
// never on map iteration order or pointer identity, so repeated calls on
// an unmodified function are byte-identical.
func Function(fn *ir.Function) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s\n", fn.Name)
	for _, blk := range fn.Blocks {
		fmt.Fprintf(&b, "bb%d:\n", blk.ID)
		for _, instr := range blk.Instrs {
			b.WriteString("  ")
			if id, ok := instr.Result(); ok {
				fmt.Fprintf(&b, "v%d = ", id)
			}
			b.WriteString(Instruction(instr))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Instruction renders a single instruction's mnemonic and operands,
// without a leading result assignment or trailing newline.
func Instruction(instr ir.Instruction) string {
	switch i := instr.(type) {
	case *ir.RetInstr:
		if !i.HasValue {
			return "ret"
		}
		return "ret " + vtp(i.Value)

	case *ir.UnreachableInstr:
		return "unreachable"

	case *ir.BinopInstr:
		return fmt.Sprintf("%s %s, v%d", mnemonic(binopMnemonic, i.Op), vtp(i.LHS), i.RHS)

	case *ir.CastInstr:
		return fmt.Sprintf("%s %s to t%d", mnemonic(castMnemonic, i.Op), vtp(i.Value), i.DstType)

	case *ir.Cmp2Instr:
		return fmt.Sprintf("%s %s, v%d", mnemonic(predMnemonic, i.Pred), vtp(i.LHS), i.RHS)

	case *ir.LoadInstr:
		if i.HasExplicit {
			return fmt.Sprintf("load.t%d %s", i.ExplicitType, vtp(i.Ptr))
		}
		return "load " + vtp(i.Ptr)

	case *ir.StoreInstr:
		return fmt.Sprintf("store %s, %s", vtp(i.Ptr), vtp(i.Value))

	case *ir.GEPInstr:
		var b strings.Builder
		b.WriteString("gep ")
		b.WriteString(vtp(i.Base))
		for _, idx := range i.Indices {
			fmt.Fprintf(&b, " + t%d[v%d]", idx.ContainerType, idx.Value)
		}
		return b.String()

	case *ir.BrInstr:
		if !i.Conditional {
			return fmt.Sprintf("br bb%d", i.TrueBlock)
		}
		return fmt.Sprintf("br %s, bb%d, bb%d", vtp(i.Cond), i.TrueBlock, i.FalseBlock)

	case *ir.PhiInstr:
		var b strings.Builder
		fmt.Fprintf(&b, "phi t%d", i.Type)
		for _, in := range i.Incoming {
			fmt.Fprintf(&b, " [v%d, bb%d]", in.Value, in.Pred)
		}
		return b.String()

	case *ir.CallInstr:
		var b strings.Builder
		if i.IsInvoke {
			b.WriteString("invoke ")
		} else {
			b.WriteString("call ")
		}
		b.WriteString(vtp(i.Callee))
		b.WriteByte('(')
		for n, a := range i.Args {
			if n > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "t%d:v%d", a.Type, a.Value)
			if a.CopySize > 0 {
				fmt.Fprintf(&b, "[byval %d]", a.CopySize)
			}
		}
		b.WriteByte(')')
		if i.IsInvoke {
			fmt.Fprintf(&b, " to bb%d unwind bb%d", i.NormalDest, i.UnwindDest)
		}
		return b.String()

	case *ir.SwitchInstr:
		var b strings.Builder
		fmt.Fprintf(&b, "switch t%d v%d, default bb%d", i.CondType, i.Value, i.Default)
		for _, c := range i.Cases {
			fmt.Fprintf(&b, " [%d, bb%d]", c.Value, c.Target)
		}
		return b.String()

	case *ir.AllocaInstr:
		return fmt.Sprintf("alloca t%d, count t%d:v%d, align %d, size %d",
			i.ResultType, i.CountType, i.CountValue, i.Alignment, i.ElementSize)

	case *ir.SelectInstr:
		return fmt.Sprintf("select %s, %s, v%d", vtp(i.Pred), vtp(i.True), i.False)

	case *ir.VAArgInstr:
		return fmt.Sprintf("vaarg t%d:v%d to t%d", i.SrcType, i.Value, i.DstType)

	case *ir.ExtractValInstr:
		var b strings.Builder
		b.WriteString("extractval ")
		b.WriteString(vtp(i.Base))
		for _, idx := range i.Indices {
			fmt.Fprintf(&b, ", %d", idx)
		}
		return b.String()

	case *ir.InsertValInstr:
		var b strings.Builder
		fmt.Fprintf(&b, "insertval %s, %s", vtp(i.Src), vtp(i.Replacement))
		for _, idx := range i.Indices {
			fmt.Fprintf(&b, ", %d", idx)
		}
		return b.String()

	case *ir.LandingPadInstr:
		var b strings.Builder
		fmt.Fprintf(&b, "landingpad t%d", i.Type)
		if i.IsCleanup {
			b.WriteString(" cleanup")
		}
		for _, cl := range i.Clauses {
			kind := "filter"
			if cl.IsCatch {
				kind = "catch"
			}
			fmt.Fprintf(&b, " %s(%d)", kind, cl.ClauseVal)
		}
		return b.String()

	case *ir.ResumeInstr:
		return "resume " + vtp(i.Values[0])

	case *ir.CmpBranchInstr:
		return fmt.Sprintf("cmp-branch %s v%d, v%d, bb%d, bb%d",
			mnemonic(predMnemonic, i.Pred), i.LHS, i.RHS, i.TrueBlk, i.FalseBlk)

	case *ir.CmpSelectInstr:
		return fmt.Sprintf("cmp-select %s v%d, v%d, v%d, v%d",
			mnemonic(predMnemonic, i.Pred), i.LHS, i.RHS, i.True, i.False)

	case *ir.LeaInstr:
		return fmt.Sprintf("lea %s + #%x + %s * #%x", vtp(i.BasePtr), i.ImmediateOffset, vtp(i.ValueOffset), i.ValueOffsetMultiply)

	case *ir.MoveInstr:
		return "move " + vtp(i.Value)

	case *ir.StackCopyInstr:
		return fmt.Sprintf("stackcopy %s, %s, #%x", vtp(i.Dst), vtp(i.Src), i.Size)

	case *ir.StackShrinkInstr:
		return fmt.Sprintf("stackshrink #%x", i.Size)

	case *ir.MlaInstr:
		return fmt.Sprintf("mla v%d, v%d, v%d", i.A, i.B, i.C)

	default:
		return fmt.Sprintf("<%s>", instr.Class())
	}
}
