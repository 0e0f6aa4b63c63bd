package valuetab

import "testing"

func TestAllocAssignsSequentialIDs(t *testing.T) {
	tab := New()
	a := tab.Alloc(Value{Class: Constant, Type: 3, ConstBits: 1})
	b := tab.Alloc(Value{Class: Constant, Type: 3, ConstBits: 2})
	if a != 0 || b != 1 {
		t.Fatalf("Alloc ids = (%d, %d), want (0, 1)", a, b)
	}
	if tab.NextValue() != 2 {
		t.Fatalf("NextValue = %d, want 2", tab.NextValue())
	}
}

func TestAllocForwardIsIdempotent(t *testing.T) {
	tab := New()
	tab.AllocForward(3, 7)
	if tab.Get(3).Class != Undef || tab.Get(3).Type != 7 {
		t.Fatalf("slot 3 = %+v, want Undef/type 7", tab.Get(3))
	}
	if tab.NextValue() != 4 {
		t.Fatalf("NextValue = %d, want 4", tab.NextValue())
	}
	// A second forward reference to the same slot must not clobber it.
	tab.AllocForward(3, 99)
	if tab.Get(3).Type != 7 {
		t.Fatalf("second AllocForward overwrote slot: type = %d, want 7", tab.Get(3).Type)
	}
}

func TestDefineBindsForwardSlotPreservingType(t *testing.T) {
	tab := New()
	tab.AllocForward(0, 3)
	if tab.Defined(0) {
		t.Fatal("forward slot reported defined before Define")
	}
	tab.Define(0, Value{Class: Temporary})
	if !tab.Defined(0) {
		t.Fatal("slot not marked defined after Define")
	}
	if tab.Get(0).Type != 3 {
		t.Fatalf("Define clobbered type: got %d, want 3", tab.Get(0).Type)
	}
	if tab.Get(0).Class != Temporary {
		t.Fatalf("Define didn't set class: got %v, want Temporary", tab.Get(0).Class)
	}
}

func TestGetConst32TruncatesTo32Bits(t *testing.T) {
	tab := New()
	id := tab.Alloc(Value{Class: Constant, Type: 3, ConstBits: 0x1_0000_0005})
	if got := tab.GetConst32(id); got != 5 {
		t.Errorf("GetConst32 = %d, want 5", got)
	}
	if got := tab.GetConst64(id); got != 0x1_0000_0005 {
		t.Errorf("GetConst64 = %#x, want %#x", got, uint64(0x1_0000_0005))
	}
}

func TestFunctionFollowsAliasChain(t *testing.T) {
	tab := New()
	target := tab.Alloc(Value{Class: Function, Type: 1, FuncName: "real"})
	a1 := tab.Alloc(Value{Class: Alias, AliasTarget: target})
	a2 := tab.Alloc(Value{Class: Alias, AliasTarget: a1})

	v, err := tab.Function(a2)
	if err != nil {
		t.Fatalf("Function: %v", err)
	}
	if v.FuncName != "real" {
		t.Errorf("Function resolved to %+v, want real", v)
	}
}

func TestFunctionRejectsOverlongAliasChain(t *testing.T) {
	tab := New()
	// A cycle is the simplest way to force the walk past maxAliasChain.
	id := tab.Alloc(Value{Class: Alias})
	tab.Get(id).AliasTarget = id

	if _, err := tab.Function(id); err != ErrAliasChainTooLong {
		t.Fatalf("Function on cyclic alias = %v, want ErrAliasChainTooLong", err)
	}
}
