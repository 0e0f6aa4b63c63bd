package decode

import (
	"testing"

	"github.com/vmir-go/vmir/valuetab"
)

func TestTakeVTPBackwardReference(t *testing.T) {
	values := valuetab.New()
	id := values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: 3, ConstBits: 9})

	cur := NewCursor(values, []int64{int64(values.NextValue()) - int64(id)})
	vtp, err := cur.TakeVTP()
	if err != nil {
		t.Fatalf("TakeVTP: %v", err)
	}
	if vtp.Value != id || vtp.Type != 3 {
		t.Errorf("TakeVTP = %+v, want {Type:3 Value:%d}", vtp, id)
	}
	if cur.Len() != 0 {
		t.Errorf("Len = %d, want 0 (backward ref consumes one element)", cur.Len())
	}
}

func TestTakeVTPForwardReferenceAllocatesUndef(t *testing.T) {
	values := valuetab.New()
	values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: 3, ConstBits: 1})
	next := values.NextValue()

	// delta == 0 references the slot about to be allocated, which doesn't
	// exist yet; the second element supplies its type explicitly.
	cur := NewCursor(values, []int64{0, 5})
	vtp, err := cur.TakeVTP()
	if err != nil {
		t.Fatalf("TakeVTP: %v", err)
	}
	if vtp.Value != next || vtp.Type != 5 {
		t.Errorf("TakeVTP = %+v, want {Type:5 Value:%d}", vtp, next)
	}
	if cur.Len() != 0 {
		t.Errorf("Len = %d, want 0 (forward ref consumes two elements)", cur.Len())
	}
	if values.Get(next).Class != valuetab.Undef {
		t.Errorf("forward slot class = %v, want Undef", values.Get(next).Class)
	}
	if values.Defined(next) {
		t.Errorf("forward slot should not be marked defined yet")
	}
}

func TestTakeValueSignedRoundTrip(t *testing.T) {
	values := valuetab.New()
	for i := 0; i < 5; i++ {
		values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: 3, ConstBits: uint64(i)})
	}
	next := values.NextValue()

	cases := []struct {
		raw    int64
		wantID valuetab.ID
	}{
		{raw: 0, wantID: next},      // delta 0
		{raw: 2, wantID: next - 1},  // positive delta 1 (backward)
		{raw: 1, wantID: next},      // negative delta 0, same as raw 0
		{raw: 11, wantID: next + 5}, // negative delta -5 (forward)
	}
	for _, c := range cases {
		cur := NewCursor(values, []int64{c.raw})
		got, err := cur.TakeValueSigned(3)
		if err != nil {
			t.Fatalf("TakeValueSigned(%d): %v", c.raw, err)
		}
		if got != c.wantID {
			t.Errorf("TakeValueSigned(%d) = %d, want %d", c.raw, got, c.wantID)
		}
	}
}

func TestTakeUintAndMissingOperand(t *testing.T) {
	cur := NewCursor(valuetab.New(), []int64{42})
	u, err := cur.TakeUint()
	if err != nil || u != 42 {
		t.Fatalf("TakeUint = (%d, %v), want (42, nil)", u, err)
	}
	if _, err := cur.TakeUint(); err == nil {
		t.Fatal("expected ErrMissingOperand on exhausted cursor")
	}
}

func TestSkip(t *testing.T) {
	cur := NewCursor(valuetab.New(), []int64{1, 2, 3})
	if err := cur.Skip(2); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if cur.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cur.Len())
	}
	if err := cur.Skip(5); err == nil {
		t.Fatal("expected ErrMissingOperand skipping past end")
	}
}
