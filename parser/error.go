package parser

import "fmt"

// SyntaxError is a single parse failure at a source position.
type SyntaxError struct {
	Line    int32
	Column  int
	Message string
}

func newSyntaxError(line int32, column int, message string) SyntaxError {
	return SyntaxError{Line: line, Column: column, Message: message}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 syntax error: line %d, column %d - %s", e.Line, e.Column, e.Message)
}
