package build

import (
	"github.com/vmir-go/vmir/ir"
)

// allocateResult is allocate_result from C2: it assigns the instruction a
// fresh SSA value slot of the given type and back-links the slot to the
// instruction. Void-returning instructions never call this.
func allocateResult(c *Context, typ int, instr ir.Instruction) {
	id := c.Unit.Values.AllocInstrRet(typ)
	ir.SetResult(instr, id)
}
