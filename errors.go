package edne

import (
	"errors"
	"fmt"
)

// EncodingError reports a failure decoding source bytes into text.
type EncodingError struct {
	Cause error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %v", e.Cause)
}

func (e *EncodingError) Unwrap() error { return e.Cause }

// FieldCountError reports a line whose field count differs from the
// record kind's fixed expectation.
type FieldCountError struct {
	Expected int
	Got      int
	Line     int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Expected, e.Got)
}

// EmptyFieldError reports a required field that was empty after
// trimming.
type EmptyFieldError struct {
	Field string
	Line  int
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("line %d: field '%s' is empty", e.Line, e.Field)
}

// InvalidNumberError reports a numeric field whose text did not parse.
type InvalidNumberError struct {
	Field string
	Value string
	Line  int
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("line %d: field '%s' has invalid number: '%s'", e.Line, e.Field, e.Value)
}

// InvalidValueError reports a field whose text did not satisfy its
// domain grammar (bad identifier, UF code, enumeration code).
type InvalidValueError struct {
	Field  string
	Value  string
	Reason string
	Line   int

	cause error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("line %d: field '%s' has invalid value '%s': %s", e.Line, e.Field, e.Value, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return e.cause }

// invalidValue wraps a domain validation failure with its field and
// line context.
func invalidValue(field, value string, line int, cause error) error {
	return &InvalidValueError{
		Field:  field,
		Value:  value,
		Reason: cause.Error(),
		Line:   line,
		cause:  cause,
	}
}

// ParseFailedError covers parser-internal conditions not described by
// the other error kinds.
type ParseFailedError struct {
	Message string
	Line    int
}

func (e *ParseFailedError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// IDError reports an invalid entity identifier: either the zero value
// or text that is not an unsigned decimal number.
type IDError struct {
	Kind  string // "locality", "neighborhood", "address", ...
	Value string // offending text; empty for the zero-value case
	Zero  bool
}

func (e *IDError) Error() string {
	if e.Zero {
		return fmt.Sprintf("%s ID cannot be zero", e.Kind)
	}
	return fmt.Sprintf("invalid %s ID format: '%s'", e.Kind, e.Value)
}

// CodeError reports a value outside a closed enumeration.
type CodeError struct {
	Enum string // e.g. "locality situation"
	Code string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("invalid %s code: '%s'", e.Enum, e.Code)
}

// ErrUFEmpty is returned when a UF code is empty after trimming.
var ErrUFEmpty = errors.New("UF code is empty")

// UFLengthError reports a UF code whose trimmed length is not 2.
type UFLengthError struct {
	Length int
}

func (e *UFLengthError) Error() string {
	return fmt.Sprintf("UF code must have length 2, got %d", e.Length)
}

// UFCodeError reports a two-character code that is not a federative
// unit.
type UFCodeError struct {
	Code string
}

func (e *UFCodeError) Error() string {
	return fmt.Sprintf("invalid UF code: %s", e.Code)
}
