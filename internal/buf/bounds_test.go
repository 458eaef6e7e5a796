package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10)=%d want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp(-3,0,10)=%d want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("Clamp(42,0,10)=%d want 10", got)
	}
}

func TestClampRange(t *testing.T) {
	if s, e := ClampRange(2, 5, 10); s != 2 || e != 5 {
		t.Fatalf("ClampRange(2,5,10)=(%d,%d) want (2,5)", s, e)
	}
	if s, e := ClampRange(-4, 100, 10); s != 0 || e != 10 {
		t.Fatalf("ClampRange(-4,100,10)=(%d,%d) want (0,10)", s, e)
	}
	// Inverted input collapses to an empty range at the clamped start.
	if s, e := ClampRange(7, 3, 10); s != 7 || e != 7 {
		t.Fatalf("ClampRange(7,3,10)=(%d,%d) want (7,7)", s, e)
	}
	if s, e := ClampRange(0, 0, 0); s != 0 || e != 0 {
		t.Fatalf("ClampRange(0,0,0)=(%d,%d) want (0,0)", s, e)
	}
}
