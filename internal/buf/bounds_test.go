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

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(6, 4); !ok || p != 24 {
		t.Fatalf("MulOverflowSafe(6,4)=%d,%v want 24,true", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", p, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow for MaxInt/2+1 * 2")
	}
	if _, ok := MulOverflowSafe(-1, 4); ok {
		t.Fatalf("expected negative operand to be rejected")
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if got, ok := Slice(data, 5, 0); !ok || len(got) != 0 {
		t.Fatalf("Slice at end with zero length should succeed")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
