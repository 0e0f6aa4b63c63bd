package ir

// New<Class>Instr constructors: package build (the only caller) cannot
// reach the unexported instrBase field directly, so each instruction
// variant gets a tiny constructor that seeds its class tag. Every other
// field is exported and set directly by the caller after construction.

func NewRetInstr() *RetInstr                 { return &RetInstr{instrBase: instrBase{class: ClassRet}} }
func NewUnreachableInstr() *UnreachableInstr {
	return &UnreachableInstr{instrBase: instrBase{class: ClassUnreachable}}
}
func NewBinopInstr() *BinopInstr { return &BinopInstr{instrBase: instrBase{class: ClassBinop}} }
func NewCastInstr() *CastInstr   { return &CastInstr{instrBase: instrBase{class: ClassCast}} }
func NewCmp2Instr() *Cmp2Instr   { return &Cmp2Instr{instrBase: instrBase{class: ClassCmp2}} }
func NewLoadInstr() *LoadInstr   { return &LoadInstr{instrBase: instrBase{class: ClassLoad}} }
func NewStoreInstr() *StoreInstr { return &StoreInstr{instrBase: instrBase{class: ClassStore}} }
func NewGEPInstr() *GEPInstr     { return &GEPInstr{instrBase: instrBase{class: ClassGEP}} }
func NewBrInstr() *BrInstr       { return &BrInstr{instrBase: instrBase{class: ClassBr}} }
func NewPhiInstr() *PhiInstr     { return &PhiInstr{instrBase: instrBase{class: ClassPhi}} }
func NewCallInstr() *CallInstr   { return &CallInstr{instrBase: instrBase{class: ClassCall}} }
func NewInvokeInstr() *CallInstr {
	return &CallInstr{instrBase: instrBase{class: ClassInvoke}}
}
func NewSwitchInstr() *SwitchInstr   { return &SwitchInstr{instrBase: instrBase{class: ClassSwitch}} }
func NewAllocaInstr() *AllocaInstr   { return &AllocaInstr{instrBase: instrBase{class: ClassAlloca}} }
func NewSelectInstr() *SelectInstr   { return &SelectInstr{instrBase: instrBase{class: ClassSelect}} }
func NewVAArgInstr() *VAArgInstr     { return &VAArgInstr{instrBase: instrBase{class: ClassVAArg}} }
func NewExtractValInstr() *ExtractValInstr {
	return &ExtractValInstr{instrBase: instrBase{class: ClassExtractVal}}
}
func NewInsertValInstr() *InsertValInstr {
	return &InsertValInstr{instrBase: instrBase{class: ClassInsertVal}}
}
func NewLandingPadInstr() *LandingPadInstr {
	return &LandingPadInstr{instrBase: instrBase{class: ClassLandingPad}}
}
func NewResumeInstr() *ResumeInstr { return &ResumeInstr{instrBase: instrBase{class: ClassResume}} }

func NewCmpBranchInstr() *CmpBranchInstr {
	return &CmpBranchInstr{instrBase: instrBase{class: ClassCmpBranch}}
}
func NewCmpSelectInstr() *CmpSelectInstr {
	return &CmpSelectInstr{instrBase: instrBase{class: ClassCmpSelect}}
}
func NewLeaInstr() *LeaInstr   { return &LeaInstr{instrBase: instrBase{class: ClassLea}} }
func NewMoveInstr() *MoveInstr { return &MoveInstr{instrBase: instrBase{class: ClassMove}} }
func NewStackCopyInstr() *StackCopyInstr {
	return &StackCopyInstr{instrBase: instrBase{class: ClassStackCopy}}
}
func NewStackShrinkInstr() *StackShrinkInstr {
	return &StackShrinkInstr{instrBase: instrBase{class: ClassStackShrink}}
}
func NewMlaInstr() *MlaInstr { return &MlaInstr{instrBase: instrBase{class: ClassMla}} }
