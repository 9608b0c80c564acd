package compiler

import "fmt"

// CompileError is raised for disallowed callee shapes, oversized
// constant pools, and other compile-time-detectable problems that
// are not lexing/parsing failures.
type CompileError struct {
	Message string
}

func (e CompileError) Error() string {
	return fmt.Sprintf("💥 compile error: %s", e.Message)
}
