// Package decode implements the Operand Decoder (C1): the primitives that
// peel typed values, bare relative references, and unsigned immediates off
// a function record's argument list, resolving relative value IDs against
// the module's value table and allocating forward-declared slots as
// needed.
package decode

import (
	"errors"
	"fmt"

	"github.com/vmir-go/vmir/valuetab"
)

// ErrMissingOperand is returned when a Take* call runs past the end of the
// record's argument list.
var ErrMissingOperand = errors.New("decode: missing operand")

// VTP is a value-typed-reference: a (type, value) pair.
type VTP struct {
	Type  int
	Value valuetab.ID
}

// Cursor walks a single record's argument list, consuming elements from
// the front as each Take* call succeeds. It is cheap to construct — one
// per record — and does not outlive the parser call that owns it (spec.md
// §5: "scratch operand buffers ... live on the call stack").
type Cursor struct {
	values *valuetab.Table
	args   []int64
}

// NewCursor wraps a record's argument list for decoding against values.
func NewCursor(values *valuetab.Table, args []int64) *Cursor {
	return &Cursor{values: values, args: args}
}

// Len returns the number of elements remaining.
func (c *Cursor) Len() int {
	return len(c.args)
}

func (c *Cursor) pop() (int64, error) {
	if len(c.args) < 1 {
		return 0, ErrMissingOperand
	}
	v := c.args[0]
	c.args = c.args[1:]
	return v, nil
}

// Skip discards n leading elements, used by the dispatcher to drop the
// legacy GEP's type+inrange pair and the invoke/call explicit-function-type
// element.
func (c *Cursor) Skip(n int) error {
	if len(c.args) < n {
		return ErrMissingOperand
	}
	c.args = c.args[n:]
	return nil
}

// TakeVTP reads a value-typed-reference. It consumes one element if the
// reference is backward (the type is inferred from the referenced slot's
// current type) or two elements if forward (the second element is an
// explicit type id; the slot is allocated with class Undef and that
// type).
func (c *Cursor) TakeVTP() (VTP, error) {
	delta, err := c.pop()
	if err != nil {
		return VTP{}, fmt.Errorf("decode: TakeVTP: %w", err)
	}
	next := c.values.NextValue()
	val := valuetab.ID(int64(next) - delta)

	if val < next {
		return VTP{Type: c.values.Get(val).Type, Value: val}, nil
	}

	typ, err := c.pop()
	if err != nil {
		return VTP{}, fmt.Errorf("decode: TakeVTP: forward reference missing explicit type: %w", err)
	}
	c.values.AllocForward(val, int(typ))
	return VTP{Type: int(typ), Value: val}, nil
}

// TakeValue reads a single-element relative reference whose type is
// supplied by the caller (e.g. the LHS type in a binop). No slot is
// allocated: a forward use with unknown type cannot occur here, by
// construction of the opcodes that call it.
func (c *Cursor) TakeValue(typ int) (valuetab.ID, error) {
	delta, err := c.pop()
	if err != nil {
		return 0, fmt.Errorf("decode: TakeValue: %w", err)
	}
	next := c.values.NextValue()
	return valuetab.ID(int64(next) - delta), nil
}

// TakeValueSigned reads a relative reference whose delta is encoded with
// sign-rotated zig-zag (bit 0 carries the sign, the remaining bits carry
// the magnitude). PHI incoming values use this because they may reference
// either direction relative to the PHI itself.
func (c *Cursor) TakeValueSigned(typ int) (valuetab.ID, error) {
	raw, err := c.pop()
	if err != nil {
		return 0, fmt.Errorf("decode: TakeValueSigned: %w", err)
	}
	delta := signRotatedDecode(raw)
	next := c.values.NextValue()
	return valuetab.ID(int64(next) - delta), nil
}

// TakeUint reads an unsigned immediate.
func (c *Cursor) TakeUint() (uint64, error) {
	v, err := c.pop()
	if err != nil {
		return 0, fmt.Errorf("decode: TakeUint: %w", err)
	}
	return uint64(v), nil
}

// signRotatedDecode undoes the zig-zag rotation: bit 0 is the sign,
// the remaining bits (shifted right by 1) are the magnitude.
func signRotatedDecode(raw int64) int64 {
	u := uint64(raw)
	mag := int64(u >> 1)
	if u&1 != 0 {
		return -mag
	}
	return mag
}
