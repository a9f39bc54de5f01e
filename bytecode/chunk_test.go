package bytecode

import (
	"testing"

	"ember/value"
)

func TestWriteAppendsCodeAndLines(t *testing.T) {
	c := NewChunk()
	c.WriteOp(OpReturn, 7)
	c.Write(0x2A, 8)

	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
	if c.Code[0] != byte(OpReturn) || c.Lines[0] != 7 {
		t.Errorf("Code[0]/Lines[0] = %d/%d, want %d/7", c.Code[0], c.Lines[0], byte(OpReturn))
	}
	if c.Code[1] != 0x2A || c.Lines[1] != 8 {
		t.Errorf("Code[1]/Lines[1] = %d/%d, want 42/8", c.Code[1], c.Lines[1])
	}
}

func TestAddConstant(t *testing.T) {
	c := NewChunk()
	idx, err := c.AddConstant(value.Number(3.14))
	if err != nil {
		t.Fatalf("AddConstant() error: %v", err)
	}
	if idx != 0 {
		t.Errorf("idx = %d, want 0", idx)
	}
	idx2, err := c.AddConstant(value.Number(2.71))
	if err != nil {
		t.Fatalf("AddConstant() error: %v", err)
	}
	if idx2 != 1 {
		t.Errorf("idx2 = %d, want 1", idx2)
	}
}

func TestAddConstantOverflow(t *testing.T) {
	c := NewChunk()
	for i := 0; i < maxConstants; i++ {
		if _, err := c.AddConstant(value.Number(float64(i))); err != nil {
			t.Fatalf("unexpected error at constant %d: %v", i, err)
		}
	}
	if _, err := c.AddConstant(value.Number(999)); err == nil {
		t.Fatal("expected an error adding the 257th constant, got nil")
	}
}

func TestPatchU16AndReadU16(t *testing.T) {
	c := NewChunk()
	c.WriteOp(OpJump, 1)
	offset := c.Count()
	c.Write(0xFF, 1)
	c.Write(0xFF, 1)

	c.PatchU16(offset, 513)
	if got := c.ReadU16(offset); got != 513 {
		t.Errorf("ReadU16() = %d, want 513", got)
	}
}
