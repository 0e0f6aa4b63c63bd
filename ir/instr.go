package ir

import "github.com/vmir-go/vmir/valuetab"

// Class identifies an instruction's variant. The first block matches the
// per-opcode parser table in spec.md §4.5; the second block is the
// synthesized-only classes from the same section — never produced by a
// parser, but understood by the printer, classifier and instruction
// factory because later passes emit them.
type Class int

const (
	ClassRet Class = iota
	ClassUnreachable
	ClassBinop
	ClassCast
	ClassCmp2
	ClassLoad
	ClassStore
	ClassGEP
	ClassBr
	ClassPhi
	ClassCall
	ClassInvoke
	ClassSwitch
	ClassAlloca
	ClassSelect
	ClassVAArg
	ClassExtractVal
	ClassInsertVal
	ClassLandingPad
	ClassResume

	// Synthesized by later passes; never produced by the parser in this
	// package (spec.md §4.5 footnote).
	ClassCmpBranch
	ClassCmpSelect
	ClassLea
	ClassMove
	ClassStackCopy
	ClassStackShrink
	ClassMla
)

func (c Class) String() string {
	switch c {
	case ClassRet:
		return "ret"
	case ClassUnreachable:
		return "unreachable"
	case ClassBinop:
		return "binop"
	case ClassCast:
		return "cast"
	case ClassCmp2:
		return "cmp2"
	case ClassLoad:
		return "load"
	case ClassStore:
		return "store"
	case ClassGEP:
		return "gep"
	case ClassBr:
		return "br"
	case ClassPhi:
		return "phi"
	case ClassCall:
		return "call"
	case ClassInvoke:
		return "invoke"
	case ClassSwitch:
		return "switch"
	case ClassAlloca:
		return "alloca"
	case ClassSelect:
		return "select"
	case ClassVAArg:
		return "vaarg"
	case ClassExtractVal:
		return "extractval"
	case ClassInsertVal:
		return "insertval"
	case ClassLandingPad:
		return "landingpad"
	case ClassResume:
		return "resume"
	case ClassCmpBranch:
		return "cmp-branch"
	case ClassCmpSelect:
		return "cmp-select"
	case ClassLea:
		return "lea"
	case ClassMove:
		return "move"
	case ClassStackCopy:
		return "stackcopy"
	case ClassStackShrink:
		return "stackshrink"
	case ClassMla:
		return "mla"
	default:
		return "unknown"
	}
}

// IsTerminator reports whether c ends a basic block (spec.md GLOSSARY).
func (c Class) IsTerminator() bool {
	switch c {
	case ClassRet, ClassBr, ClassSwitch, ClassInvoke, ClassUnreachable, ClassResume:
		return true
	default:
		return false
	}
}

// Instruction is implemented by every instruction variant. Each variant is
// its own Go type carrying an owned payload (spec.md §9: a tagged variant
// per class, not a flexible trailing array), with instrBase embedded for
// the common header.
type Instruction interface {
	Class() Class
	Block() *Block
	setBlock(*Block)
	// Result returns the instruction's SSA result slot and whether it has
	// one at all (void-returning instructions do not).
	Result() (valuetab.ID, bool)
	setResult(valuetab.ID)
}

type instrBase struct {
	class  Class
	block  *Block
	result valuetab.ID
	hasRes bool
}

func (b *instrBase) Class() Class               { return b.class }
func (b *instrBase) Block() *Block               { return b.block }
func (b *instrBase) setBlock(blk *Block)         { b.block = blk }
func (b *instrBase) setResult(id valuetab.ID)    { b.result, b.hasRes = id, true }
func (b *instrBase) Result() (valuetab.ID, bool) { return b.result, b.hasRes }

// SetResult assigns instr's SSA result slot. It is exported so package
// build's allocate_result step (C2) can bind the value the factory
// allocated for an instruction's result.
func SetResult(instr Instruction, id valuetab.ID) {
	instr.setResult(id)
}

// VTPRef is a value-typed-reference attached to an instruction operand.
type VTPRef struct {
	Type  int
	Value valuetab.ID
}

// --- Ret ---

type RetInstr struct {
	instrBase
	Value    VTPRef
	HasValue bool
}

// --- Unreachable ---

type UnreachableInstr struct {
	instrBase
}

// --- Binop ---

type BinopInstr struct {
	instrBase
	LHS VTPRef
	RHS valuetab.ID
	Op  int
}

// --- Cast ---

type CastInstr struct {
	instrBase
	Value   VTPRef
	DstType int
	Op      int
}

// --- Cmp2 ---

type Cmp2Instr struct {
	instrBase
	LHS  VTPRef
	RHS  valuetab.ID
	Pred int
}

// --- Load ---

type LoadInstr struct {
	instrBase
	Ptr          VTPRef
	HasExplicit  bool
	ExplicitType int
}

// --- Store ---

type StoreInstr struct {
	instrBase
	Ptr   VTPRef
	Value VTPRef
}

// --- GEP ---

type GEPIndex struct {
	Value         valuetab.ID
	ContainerType int
}

type GEPInstr struct {
	instrBase
	Base    VTPRef
	Indices []GEPIndex
}

// --- Br ---

type BrInstr struct {
	instrBase
	TrueBlock  int
	FalseBlock int
	Conditional bool
	Cond       VTPRef
}

// --- Phi ---

type PhiIncoming struct {
	Pred  int
	Value valuetab.ID
}

type PhiInstr struct {
	instrBase
	Type     int
	Incoming []PhiIncoming
}

// --- Call / Invoke ---

type CallArg struct {
	Value    valuetab.ID
	Type     int
	CopySize int
}

type CallInstr struct {
	instrBase
	Callee      VTPRef
	NormalDest  int
	UnwindDest  int
	IsInvoke    bool
	Args        []CallArg
}

// --- Switch ---

type SwitchCase struct {
	Value  uint64
	Target int
}

type SwitchInstr struct {
	instrBase
	CondType  int
	Value     valuetab.ID
	Default   int
	Cases     []SwitchCase
}

// --- Alloca ---

type AllocaInstr struct {
	instrBase
	ResultType    int
	ElementSize   int
	Alignment     int
	CountType     int
	CountValue    valuetab.ID
	IsExplicitPtr bool
}

// --- Select / VSelect ---

type SelectInstr struct {
	instrBase
	True  VTPRef
	False valuetab.ID
	Pred  VTPRef
}

// --- VAArg ---

type VAArgInstr struct {
	instrBase
	Value   valuetab.ID
	SrcType int
	DstType int
}

// --- ExtractVal ---

type ExtractValInstr struct {
	instrBase
	Base    VTPRef
	Indices []int
}

// --- InsertVal ---

type InsertValInstr struct {
	instrBase
	Src         VTPRef
	Replacement VTPRef
	Indices     []int
}

// --- LandingPad ---

type LandingPadClause struct {
	ClauseVal uint64
	IsCatch   bool
}

type LandingPadInstr struct {
	instrBase
	Type        int
	IsCleanup   bool
	Clauses     []LandingPadClause
	Personality *VTPRef // never set by the parser: the legacy encoding's personality operand is read and discarded
}

// --- Resume ---

// MaxResumeValues is the number of value slots resume reserves, though
// only the first is ever filled by the parser (spec.md §9 open question:
// preserved as observed behavior, not "fixed").
const MaxResumeValues = 8

type ResumeInstr struct {
	instrBase
	Values    [MaxResumeValues]VTPRef
	NumValues int
}

// --- Synthesized-only variants (never parsed; printer/classifier/factory
// must still understand them, per spec.md §4.5 footnote) ---

type CmpBranchInstr struct {
	instrBase
	Pred             int
	LHS, RHS         valuetab.ID
	TrueBlk, FalseBlk int
}

type CmpSelectInstr struct {
	instrBase
	Pred     int
	LHS, RHS valuetab.ID
	True, False valuetab.ID
}

type LeaInstr struct {
	instrBase
	BasePtr             VTPRef
	ImmediateOffset     int
	ValueOffset         VTPRef
	ValueOffsetMultiply int
}

type MoveInstr struct {
	instrBase
	Value VTPRef
}

type StackCopyInstr struct {
	instrBase
	Dst, Src VTPRef
	Size     int
}

type StackShrinkInstr struct {
	instrBase
	Size int
}

type MlaInstr struct {
	instrBase
	A, B, C valuetab.ID
}
