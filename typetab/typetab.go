// Package typetab implements the type-table collaborator described in
// vmir-go's function-body IR builder: a tagged enum over the handful of
// type shapes the builder needs to reason about (GEP walks, cast
// destination types, switch-value widths, call-argument typing).
//
// The real toolchain builds this table while parsing the module's type
// block, long before any function body is seen. vmir-go treats that as an
// external collaborator (see ir.Unit), so Table exists here as the
// minimal, in-memory implementation needed to drive and test the builder
// end to end.
package typetab

import "fmt"

// Code identifies the shape of a Type.
type Code int

const (
	Void Code = iota
	Int
	Float
	Double
	Pointer
	Array
	Struct
	Function
)

// StructElem is one field of a Struct type.
type StructElem struct {
	Type ID
}

// Type is one entry in the table. Only the fields relevant to Code are
// populated.
type Type struct {
	Code Code

	// Int
	Width int

	// Pointer
	Pointee   ID
	AddrSpace int

	// Array
	Element ID
	Count   int

	// Struct
	Elems []StructElem

	// Function
	Return   ID
	Params   []ID
	Varargs  bool
}

// ID indexes into a Table. IDs and value IDs (valuetab.ID) occupy disjoint
// numbering spaces, per the data model.
type ID int

// Table is a module-wide, append-only set of types.
type Table struct {
	types []Type
}

// New returns an empty table seeded with the handful of primitive types
// every function body needs (void, i1, i8, i32, i64).
func New() *Table {
	t := &Table{}
	t.Make(Type{Code: Void})
	t.Make(Type{Code: Int, Width: 1})
	t.Make(Type{Code: Int, Width: 8})
	t.Make(Type{Code: Int, Width: 32})
	t.Make(Type{Code: Int, Width: 64})
	return t
}

// Make appends a new type to the table and returns its ID. Unlike
// MakePointer, it never deduplicates — callers that need structural
// sharing (the original's type interning) should look it up first with
// FindByCode.
func (t *Table) Make(ty Type) ID {
	t.types = append(t.types, ty)
	return ID(len(t.types) - 1)
}

// Get returns the type at id. It panics on an out-of-range id: a bad type
// id reaching this far is a bug in the caller, not malformed input (the
// bitcode reader validates type ids before the function-body parser ever
// runs).
func (t *Table) Get(id ID) *Type {
	if int(id) < 0 || int(id) >= len(t.types) {
		panic(fmt.Sprintf("typetab: id %d out of range (len %d)", id, len(t.types)))
	}
	return &t.types[id]
}

// Pointee returns the pointee type of a pointer type id.
func (t *Table) Pointee(id ID) ID {
	ty := t.Get(id)
	if ty.Code != Pointer {
		panic(fmt.Sprintf("typetab: Pointee called on non-pointer %v", ty.Code))
	}
	return ty.Pointee
}

// MakePointer returns the id of a pointer-to-elem type in addrspace,
// reusing an existing entry if one already matches.
func (t *Table) MakePointer(elem ID, addrspace int) ID {
	for i := range t.types {
		ty := &t.types[i]
		if ty.Code == Pointer && ty.Pointee == elem && ty.AddrSpace == addrspace {
			return ID(i)
		}
	}
	return t.Make(Type{Code: Pointer, Pointee: elem, AddrSpace: addrspace})
}

// FindIntByWidth returns the id of an integer type of the given width,
// allocating one if the table doesn't have it yet. cmp2 and br both need
// the canonical i1 type; this is how they get it without depending on
// FindByCode returning the specific width they want.
func (t *Table) FindIntByWidth(width int) ID {
	for i := range t.types {
		if t.types[i].Code == Int && t.types[i].Width == width {
			return ID(i)
		}
	}
	return t.Make(Type{Code: Int, Width: width})
}

// FindByCode returns the id of the first type with the given code,
// allocating a fresh zero-valued one if none exists yet.
func (t *Table) FindByCode(code Code) ID {
	for i := range t.types {
		if t.types[i].Code == code {
			return ID(i)
		}
	}
	return t.Make(Type{Code: code})
}

// Bitwidth returns the bit width of an integer type, used by the switch
// parser to compute the case-value mask.
func (t *Table) Bitwidth(id ID) int {
	ty := t.Get(id)
	switch ty.Code {
	case Int:
		return ty.Width
	case Float:
		return 32
	case Double:
		return 64
	default:
		panic(fmt.Sprintf("typetab: Bitwidth called on %v", ty.Code))
	}
}

// Sizeof returns the in-memory size, in bytes, of id. Aggregate sizes are
// computed structurally; this is sufficient for the builder's by-value
// argument and alloca element-size bookkeeping, which is all this layer
// needs (real layout, including padding, is a module-level concern).
func (t *Table) Sizeof(id ID) int {
	ty := t.Get(id)
	switch ty.Code {
	case Void:
		return 0
	case Int:
		return (ty.Width + 7) / 8
	case Float:
		return 4
	case Double:
		return 8
	case Pointer:
		return 8
	case Array:
		return ty.Count * t.Sizeof(ty.Element)
	case Struct:
		size := 0
		for _, e := range ty.Elems {
			size += t.Sizeof(e.Type)
		}
		return size
	case Function:
		panic("typetab: Sizeof called on function type")
	default:
		panic(fmt.Sprintf("typetab: Sizeof called on unknown code %v", ty.Code))
	}
}

func (c Code) String() string {
	switch c {
	case Void:
		return "void"
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	case Struct:
		return "struct"
	case Function:
		return "function"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}
