package value

import "testing"

func TestIsFalsey(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", Nil, true},
		{"false", Bool(false), true},
		{"true", Bool(true), false},
		{"zero", Number(0), false},
		{"nonzero", Number(1), false},
		{"object", Obj(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFalsey(); got != tt.want {
				t.Errorf("IsFalsey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil-nil", Nil, Nil, true},
		{"nil-bool", Nil, Bool(false), false},
		{"bool-bool-same", Bool(true), Bool(true), true},
		{"bool-bool-diff", Bool(true), Bool(false), false},
		{"number-same", Number(1.5), Number(1.5), true},
		{"number-diff", Number(1.5), Number(1.6), false},
		{"obj-same-handle", Obj(3), Obj(3), true},
		{"obj-diff-handle", Obj(3), Obj(4), false},
		{"number-obj", Number(1), Obj(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{0, "0"},
		{100, "100"},
		{-2.25, "-2.25"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
