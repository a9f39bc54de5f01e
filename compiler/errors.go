package compiler

import "fmt"

// CompileError reports a single parse or semantic error pinned to the
// source line that produced it.
type CompileError struct {
	Line    int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("💥 CompileError [line %d]: %s", e.Line, e.Message)
}
