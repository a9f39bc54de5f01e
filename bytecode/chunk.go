// Package bytecode defines the instruction set emitted by the compiler and
// the Chunk container the VM executes: a flat byte stream, a parallel line
// table for error attribution, and an append-only constant pool.
package bytecode

import (
	"encoding/binary"
	"fmt"

	"ember/value"
)

// maxConstants bounds a Chunk's constant pool: Constant/GetGlobal/SetGlobal/
// DefineGlobal all address it with a single operand byte.
const maxConstants = 256

// Chunk is a compiled unit of bytecode: instruction bytes, one source line
// per byte for diagnostics, and the constants the instructions reference.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []value.Value
}

// NewChunk returns an empty Chunk ready to be written into.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Write appends a single byte (an opcode or an operand byte) produced while
// compiling source line line.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOp appends an opcode byte.
func (c *Chunk) WriteOp(op OpCode, line int) {
	c.Write(byte(op), line)
}

// AddConstant appends v to the constant pool and returns its index. Callers
// must not exceed maxConstants entries; the 257th addition returns an error
// the compiler reports as a compile error rather than silently truncating.
func (c *Chunk) AddConstant(v value.Value) (int, error) {
	if len(c.Constants) >= maxConstants {
		return 0, fmt.Errorf("Too many constants in one chunk.")
	}
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1, nil
}

// Count returns the number of bytes written so far, i.e. the offset the
// next Write will land at.
func (c *Chunk) Count() int {
	return len(c.Code)
}

// PatchU16 overwrites the two bytes at offset and offset+1 with value in
// big-endian order, used to back-patch a jump operand once its target
// address is known.
func (c *Chunk) PatchU16(offset int, v uint16) {
	binary.BigEndian.PutUint16(c.Code[offset:offset+2], v)
}

// ReadU16 reads a big-endian u16 starting at offset, used by the
// disassembler to render jump targets.
func (c *Chunk) ReadU16(offset int) uint16 {
	return binary.BigEndian.Uint16(c.Code[offset : offset+2])
}
