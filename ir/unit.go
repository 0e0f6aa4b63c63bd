package ir

import (
	"github.com/vmir-go/vmir/attrset"
	"github.com/vmir-go/vmir/typetab"
	"github.com/vmir-go/vmir/valuetab"
)

// Unit bundles the module-wide collaborators the builder needs while
// parsing a function body: the type table, the value table, and the
// attribute-set table (spec.md §6). It replaces the original's global
// ir_unit_t god-object with an explicit context value threaded through
// the call chain (spec.md §9).
type Unit struct {
	Types    *typetab.Table
	Values   *valuetab.Table
	AttrSets *attrset.Table

	// DropIntrinsics names callees whose call instructions are parsed but
	// produce no instruction and do not advance the value counter
	// (spec.md §4.5, §8 property 7).
	DropIntrinsics map[string]bool
}

// DefaultDropIntrinsics is the four-name drop-list from spec.md §4.5.
func DefaultDropIntrinsics() map[string]bool {
	return map[string]bool{
		"llvm.lifetime.start": true,
		"llvm.lifetime.end":   true,
		"llvm.prefetch":       true,
		"llvm.va_end":         true,
	}
}

// NewUnit returns a Unit with fresh, empty collaborator tables.
func NewUnit() *Unit {
	return &Unit{
		Types:          typetab.New(),
		Values:         valuetab.New(),
		AttrSets:       attrset.New(),
		DropIntrinsics: DefaultDropIntrinsics(),
	}
}
