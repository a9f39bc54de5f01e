package object

import "testing"

func TestInternStringDeduplicates(t *testing.T) {
	h := NewHeap()
	a := h.InternString("hello")
	b := h.InternString("hello")
	if a.Obj != b.Obj {
		t.Errorf("two identical literals got different handles: %v != %v", a.Obj, b.Obj)
	}
}

func TestInternStringDistinctContent(t *testing.T) {
	h := NewHeap()
	a := h.InternString("foo")
	b := h.InternString("bar")
	if a.Obj == b.Obj {
		t.Errorf("distinct content shares a handle: %v", a.Obj)
	}
}

func TestStringAtRoundTrips(t *testing.T) {
	h := NewHeap()
	v := h.InternString("round trip")
	if got := h.StringAt(v.Obj); got != "round trip" {
		t.Errorf("StringAt() = %q, want %q", got, "round trip")
	}
}

func TestConcat(t *testing.T) {
	h := NewHeap()
	a := h.InternString("foo")
	b := h.InternString("bar")
	sum := h.Concat(a.Obj, b.Obj)
	if got := h.StringAt(sum.Obj); got != "foobar" {
		t.Errorf("Concat() = %q, want %q", got, "foobar")
	}
}

func TestConcatResultIsInterned(t *testing.T) {
	h := NewHeap()
	a := h.InternString("foo")
	b := h.InternString("bar")
	sum := h.Concat(a.Obj, b.Obj)
	again := h.InternString("foobar")
	if sum.Obj != again.Obj {
		t.Errorf("concatenation result was not interned: %v != %v", sum.Obj, again.Obj)
	}
}
