// Package classify implements the Instruction Classifier (C8): a total
// function from instruction class to side-effect status, and the
// predicate algebra (inversion, operand-swap) a later optimizer pass needs
// to reorder or fold comparisons.
package classify

import (
	"fmt"

	"github.com/vmir-go/vmir/ir"
)

// HasSideEffects reports whether an instruction of class c must never be
// eliminated as dead code, even if its result is unused. This mirrors the
// original's conservative default: any class not explicitly known to be
// pure is treated as side-effecting.
func HasSideEffects(c ir.Class) bool {
	switch c {
	case ir.ClassGEP, ir.ClassCast, ir.ClassLoad, ir.ClassBinop, ir.ClassCmp2,
		ir.ClassSelect, ir.ClassLea, ir.ClassSwitch, ir.ClassPhi, ir.ClassMove,
		ir.ClassExtractVal, ir.ClassCmpSelect, ir.ClassMla:
		return false
	default:
		return true
	}
}

// Predicate identifies an icmp/fcmp comparison kind, using the same
// numeric encoding as the bitcode stream itself (LLVM's CmpInst::Predicate:
// FCMP_* occupy 0-15, ICMP_* occupy 32-41), so a predicate decoded off the
// wire needs no translation before reaching InvertPredicate or SwapPredicate.
type Predicate int

const (
	FCMP_FALSE Predicate = 0
	FCMP_OEQ   Predicate = 1
	FCMP_OGT   Predicate = 2
	FCMP_OGE   Predicate = 3
	FCMP_OLT   Predicate = 4
	FCMP_OLE   Predicate = 5
	FCMP_ONE   Predicate = 6
	FCMP_ORD   Predicate = 7
	FCMP_UNO   Predicate = 8
	FCMP_UEQ   Predicate = 9
	FCMP_UGT   Predicate = 10
	FCMP_UGE   Predicate = 11
	FCMP_ULT   Predicate = 12
	FCMP_ULE   Predicate = 13
	FCMP_UNE   Predicate = 14
	FCMP_TRUE  Predicate = 15

	ICMP_EQ  Predicate = 32
	ICMP_NE  Predicate = 33
	ICMP_UGT Predicate = 34
	ICMP_UGE Predicate = 35
	ICMP_ULT Predicate = 36
	ICMP_ULE Predicate = 37
	ICMP_SGT Predicate = 38
	ICMP_SGE Predicate = 39
	ICMP_SLT Predicate = 40
	ICMP_SLE Predicate = 41
)

var invertTable = map[Predicate]Predicate{
	ICMP_EQ: ICMP_NE, ICMP_NE: ICMP_EQ,
	ICMP_UGT: ICMP_ULE, ICMP_ULE: ICMP_UGT,
	ICMP_ULT: ICMP_UGE, ICMP_UGE: ICMP_ULT,
	ICMP_SGT: ICMP_SLE, ICMP_SLE: ICMP_SGT,
	ICMP_SLT: ICMP_SGE, ICMP_SGE: ICMP_SLT,

	FCMP_OEQ: FCMP_UNE, FCMP_UNE: FCMP_OEQ,
	FCMP_ONE: FCMP_UEQ, FCMP_UEQ: FCMP_ONE,
	FCMP_OGT: FCMP_ULE, FCMP_ULE: FCMP_OGT,
	FCMP_OLT: FCMP_UGE, FCMP_UGE: FCMP_OLT,
	FCMP_OGE: FCMP_ULT, FCMP_ULT: FCMP_OGE,
	FCMP_OLE: FCMP_UGT, FCMP_UGT: FCMP_OLE,
	FCMP_ORD: FCMP_UNO, FCMP_UNO: FCMP_ORD,
	FCMP_TRUE: FCMP_FALSE, FCMP_FALSE: FCMP_TRUE,
}

// InvertPredicate returns the predicate that is true exactly when pred is
// false. It panics on a predicate outside the 26-value alphabet above,
// matching the original's abort() on an unrecognized predicate.
func InvertPredicate(pred Predicate) Predicate {
	inv, ok := invertTable[pred]
	if !ok {
		panic(fmt.Sprintf("classify: InvertPredicate: unknown predicate %d", pred))
	}
	return inv
}

var swapTable = map[Predicate]Predicate{
	ICMP_EQ: ICMP_EQ, ICMP_NE: ICMP_NE,
	ICMP_SGT: ICMP_SLT, ICMP_SLT: ICMP_SGT,
	ICMP_SGE: ICMP_SLE, ICMP_SLE: ICMP_SGE,
	ICMP_UGT: ICMP_ULT, ICMP_ULT: ICMP_UGT,
	ICMP_UGE: ICMP_ULE, ICMP_ULE: ICMP_UGE,

	FCMP_FALSE: FCMP_FALSE, FCMP_TRUE: FCMP_TRUE,
	FCMP_OEQ: FCMP_OEQ, FCMP_ONE: FCMP_ONE,
	FCMP_UEQ: FCMP_UEQ, FCMP_UNE: FCMP_UNE,
	FCMP_ORD: FCMP_ORD, FCMP_UNO: FCMP_UNO,
	FCMP_OGT: FCMP_OLT, FCMP_OLT: FCMP_OGT,
	FCMP_OGE: FCMP_OLE, FCMP_OLE: FCMP_OGE,
	FCMP_UGT: FCMP_ULT, FCMP_ULT: FCMP_UGT,
	FCMP_UGE: FCMP_ULE, FCMP_ULE: FCMP_UGE,
}

// SwapPredicate returns the predicate equivalent to pred with its operands
// exchanged (a pred b  <=>  b SwapPredicate(pred) a). It panics on an
// unrecognized predicate, matching the original's abort().
func SwapPredicate(pred Predicate) Predicate {
	sw, ok := swapTable[pred]
	if !ok {
		panic(fmt.Sprintf("classify: SwapPredicate: unknown predicate %d", pred))
	}
	return sw
}
