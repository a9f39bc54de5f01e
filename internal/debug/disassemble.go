// Package debug renders a bytecode.Chunk as human-readable text, one line
// per instruction, in the style of a clox-family disassembler: offset,
// source line (or "|" when it repeats the previous instruction's line),
// opcode name, and any operand.
package debug

import (
	"fmt"
	"strings"

	"ember/bytecode"
	"ember/object"
	"ember/value"
)

// Disassemble renders every instruction in chunk under the given name
// header. heap is used to render string constants; it may be nil, in
// which case string constants are shown as "<string>".
func Disassemble(chunk *bytecode.Chunk, name string, heap *object.Heap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)

	offset := 0
	for offset < len(chunk.Code) {
		offset = disassembleInstruction(&b, chunk, offset, heap)
	}
	return b.String()
}

func disassembleInstruction(b *strings.Builder, chunk *bytecode.Chunk, offset int, heap *object.Heap) int {
	fmt.Fprintf(b, "%04d ", offset)
	if offset > 0 && chunk.Lines[offset] == chunk.Lines[offset-1] {
		fmt.Fprint(b, "   | ")
	} else {
		fmt.Fprintf(b, "%4d ", chunk.Lines[offset])
	}

	op := bytecode.OpCode(chunk.Code[offset])
	width := op.OperandWidth()
	if width < 0 {
		fmt.Fprintf(b, "Unknown opcode %d\n", chunk.Code[offset])
		return offset + 1
	}

	switch width {
	case 0:
		fmt.Fprintf(b, "%s\n", op)
		return offset + 1
	case 1:
		slot := chunk.Code[offset+1]
		if isConstantOp(op) {
			fmt.Fprintf(b, "%-16s %4d '%s'\n", op, slot, constantString(chunk, int(slot), heap))
		} else {
			fmt.Fprintf(b, "%-16s %4d\n", op, slot)
		}
		return offset + 2
	case 2:
		jump := chunk.ReadU16(offset + 1)
		direction := 1
		if op == bytecode.OpLoop {
			direction = -1
		}
		target := offset + 3 + direction*int(jump)
		fmt.Fprintf(b, "%-16s %4d -> %d\n", op, offset, target)
		return offset + 3
	}

	return offset + 1 + width
}

func isConstantOp(op bytecode.OpCode) bool {
	switch op {
	case bytecode.OpConstant, bytecode.OpGetGlobal, bytecode.OpSetGlobal, bytecode.OpDefineGlobal:
		return true
	}
	return false
}

func constantString(chunk *bytecode.Chunk, idx int, heap *object.Heap) string {
	if idx < 0 || idx >= len(chunk.Constants) {
		return "?"
	}
	v := chunk.Constants[idx]
	switch v.Kind {
	case value.KindNil:
		return "nil"
	case value.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case value.KindNumber:
		return value.FormatNumber(v.Number)
	case value.KindObj:
		if heap == nil {
			return "<string>"
		}
		return heap.StringAt(v.Obj)
	}
	return "?"
}
