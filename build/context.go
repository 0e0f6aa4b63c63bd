// Package build implements the Instruction Factory (C2), Block Graph
// Builder (C3), Opcode Dispatcher (C4), the per-opcode parsers (C5), and
// the Function Context (C6) that ties them together for one function
// body.
package build

import (
	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/ir"
)

// Context holds the per-function mutable state the builder threads
// through a parse: the function being built, the current-block cursor,
// and the shared module-wide Unit (spec.md §4.6).
type Context struct {
	Unit *ir.Unit
	Func *ir.Function

	cursor        int
	blocksDeclared bool
}

// NewContext creates the function context for a new function body. The
// caller supplies the function's name and type id (resolved by the
// module-level driver, out of scope here); DeclareBlocks must be called
// before any instruction record.
func NewContext(unit *ir.Unit, name string, typ int) *Context {
	return &Context{
		Unit: unit,
		Func: &ir.Function{Name: name, Type: typ},
	}
}

// DeclareBlocks handles the DECLAREBLOCKS record (C3): it rejects zero,
// rejects more than 65535, rejects being issued twice, pre-creates n empty
// blocks in insertion order, and resets the current-block cursor to block
// 0.
func (c *Context) DeclareBlocks(n int) error {
	if c.blocksDeclared {
		return ir.NewParseError(int(bitcode.DeclareBlocks), nil, ir.ErrBadBlockCount, "declare-blocks issued twice")
	}
	if n == 0 {
		return ir.NewParseError(int(bitcode.DeclareBlocks), nil, ir.ErrBadBlockCount, "zero basic blocks")
	}
	if n > 65535 {
		return ir.NewParseError(int(bitcode.DeclareBlocks), nil, ir.ErrBadBlockCount, "too many basic blocks: %d", n)
	}
	c.Func.Blocks = make([]*ir.Block, n)
	for i := 0; i < n; i++ {
		c.Func.Blocks[i] = &ir.Block{ID: i, Function: c.Func}
	}
	c.Func.DeclaredBlockCnt = n
	c.blocksDeclared = true
	c.cursor = 0
	return nil
}

// currentBlock returns the block the cursor currently points to.
func (c *Context) currentBlock() *ir.Block {
	return c.Func.Blocks[c.cursor]
}

// advance moves the cursor to the next block in insertion order. It is
// called after — and only after — a terminator-class instruction is
// appended (ret/br/switch/invoke/unreachable/resume); call and landingpad
// never advance (spec.md §4.3, §8 property 8).
func (c *Context) advance() {
	c.currentBlock().Sealed = true
	c.cursor++
}

// linkEdge records a CFG edge from the current block to the block at
// index target, rejecting an out-of-range target rather than letting it
// panic downstream. Called once per successor from the terminator parsers
// that name a destination block (br, switch, invoke).
func (c *Context) linkEdge(rec bitcode.Record, target int) error {
	if target < 0 || target >= len(c.Func.Blocks) {
		return ir.NewParseError(rec.Op, rec.Args, ir.ErrBadBlockTarget, "block target %d out of range (%d blocks)", target, len(c.Func.Blocks))
	}
	c.Func.AddEdge(c.currentBlock(), c.Func.Blocks[target])
	return nil
}
