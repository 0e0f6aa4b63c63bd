// Package attrset implements the attribute-set collaborator: an indexable
// table of per-call-argument attribute flags. Only the by-value flag is
// interpreted by the builder.
package attrset

// Kind identifies an LLVM-style parameter/return attribute. Only ByVal is
// given meaning here; the rest exist so a real attribute decoder has
// somewhere to put what it parses.
type Kind int

const (
	ByVal Kind = iota
	Other
)

// Attr is one (index, flags) pair within a Set. Index -1 means "function
// attributes", 0 means "return value attributes", and index k>0 means
// "argument k-1" — matching the original encoding.
type Attr struct {
	Index int
	Flags uint64
}

// Set is one attribute set, indexable from a call/invoke's attribute_set
// operand.
type Set struct {
	Attrs []Attr
}

// HasFlag reports whether kind is set in flags.
func HasFlag(flags uint64, kind Kind) bool {
	return flags&(1<<uint(kind)) != 0
}

// Table is the module-wide list of attribute sets.
type Table struct {
	Sets []Set
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Lookup returns the set at the given attribute_set operand value using
// the original encoding's off-by-one convention: index 0 means "no set",
// so the actual table index is attrSetOperand-1. When attrSetOperand is 0
// the subtraction underflows to a huge unsigned index, which this
// preserves on purpose (spec.md §9): Lookup reports ok=false and callers
// silently skip attribute processing, exactly as the original does.
func (t *Table) Lookup(attrSetOperand uint64) (set *Set, ok bool) {
	idx := attrSetOperand - 1
	if idx >= uint64(len(t.Sets)) {
		return nil, false
	}
	return &t.Sets[idx], true
}
