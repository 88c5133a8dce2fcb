package core

import "fmt"

// Category classifies fatal engine errors. Every failure is one of these;
// all of them halt the run permanently.
type Category string

const (
	// CategoryAssertion covers malformed landmark declarations during bootstrap.
	CategoryAssertion Category = "Assertion"
	// CategoryRuntime covers precondition violations during dispatch.
	CategoryRuntime Category = "Runtime"
	// CategoryUnknown covers lines matching no instruction shape.
	CategoryUnknown Category = "UnknownInstruction"
	// CategoryInternal covers engine misuse, e.g. stepping a halted machine.
	CategoryInternal Category = "Internal"
)

// Error is a fatal engine error with a category and an optional 1-based
// source line number (0 means unknown).
type Error struct {
	Category Category
	Msg      string
	Line     int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%sError: %s\n\tat line %d", e.Category, e.Msg, e.Line)
	}
	return fmt.Sprintf("%sError: %s", e.Category, e.Msg)
}

// Assertionf builds an assertion error for the given source line.
func Assertionf(line int, format string, a ...any) *Error {
	return &Error{Category: CategoryAssertion, Msg: fmt.Sprintf(format, a...), Line: line}
}

// Runtimef builds a runtime error for the given source line.
func Runtimef(line int, format string, a ...any) *Error {
	return &Error{Category: CategoryRuntime, Msg: fmt.Sprintf(format, a...), Line: line}
}

// Unknownf builds an unknown-instruction error for the given source line.
func Unknownf(line int, format string, a ...any) *Error {
	return &Error{Category: CategoryUnknown, Msg: fmt.Sprintf(format, a...), Line: line}
}

// Internalf builds an internal error with no source location.
func Internalf(format string, a ...any) *Error {
	return &Error{Category: CategoryInternal, Msg: fmt.Sprintf(format, a...)}
}
