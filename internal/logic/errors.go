package logic

import "fmt"

// ParseError reports malformed formula text. It never carries partial
// state: a failed parse leaves nothing behind.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d in %q: %s", e.Pos, e.Input, e.Msg)
}

// UndefinedVariableError reports an evaluation against an assignment that
// lacks a binding for a variable of the formula.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %q has no binding in the assignment", e.Name)
}

// ResourceLimitError reports that an exhaustive operation was refused
// because the input exceeds a configured bound.
type ResourceLimitError struct {
	What  string
	Limit int
	Got   int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("%s: %d exceeds the limit of %d", e.What, e.Got, e.Limit)
}
