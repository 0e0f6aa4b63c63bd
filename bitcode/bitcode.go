// Package bitcode defines the abstract record stream that feeds the
// function-body IR builder, and the opcode IDs the builder dispatches on,
// one per FUNCTION_BLOCK record kind of the host bitcode format.
//
// Everything upstream of this layer — the bit reader, the type table
// builder, the module-level value table — is out of scope (spec.md §1);
// this package only names the wire shape the builder consumes.
package bitcode

// Record is one decoded (opcode, operand-list) pair from a function's
// record stream.
type Record struct {
	Op   int
	Args []int64
}

// Opcode is a FUNCTION_BLOCK record code.
type Opcode int

// Opcode values, named after the bitcode FUNC_CODE_* records they stand
// for. The values are numbered consecutively from 1 in the order listed
// here; they are not the host format's FUNC_CODE_* numbers, so a record
// whose Op carries a host-format code is not dispatched by that code.
const (
	DeclareBlocks Opcode = iota + 1

	InstRet
	InstBinop
	InstCast
	InstLoad
	InstLoadAtomic
	InstStore
	InstStoreOld
	InstStoreAtomic
	InstStoreAtomicOld
	InstInboundsGEPOld
	InstGEPOld
	InstGEP
	InstCmp2
	InstBr
	InstPhi
	InstInvoke
	InstCall
	InstSwitch
	InstAlloca
	InstUnreachable
	InstVSelect
	InstVAArg
	InstExtractVal
	InstInsertVal
	InstLandingPad
	InstLandingPadOld
	InstResume
)
