package tensor

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch matches any *TypeMismatchError via errors.Is.
var ErrTypeMismatch = errors.New("tensor type mismatch")

// TypeMismatchError is returned when a View is interpreted as an element type
// other than the one its shape declares.
type TypeMismatchError struct {
	Shape     Shape       // Shape of the view being interpreted
	Requested ElementType // Element type the caller asked for
}

// Declared returns the name of the shape's element type.
func (e *TypeMismatchError) Declared() string {
	return e.Shape.ElementType().String()
}

// RequestedKind returns the name of the requested element type.
func (e *TypeMismatchError) RequestedKind() string {
	return e.Requested.String()
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Attempting to interpret a %s as a %s tensor", e.Shape, e.Requested)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// FormatErrorKind classifies shape parsing failures.
type FormatErrorKind int

// Shape parsing failure kinds.
const (
	Malformed FormatErrorKind = iota
	UnknownElementType
	BadDimension
)

// FormatError is returned by ParseShape.
type FormatError struct {
	Kind  FormatErrorKind
	Found string // Offending text, empty for Malformed
	Err   error  // Underlying parse error for BadDimension
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch e.Kind {
	case UnknownElementType:
		return fmt.Sprintf("couldn't recognise the %q element type", e.Found)
	case BadDimension:
		return fmt.Sprintf("%q isn't a valid dimension", e.Found)
	default:
		return "malformed shape"
	}
}

// Unwrap returns the underlying dimension parse error, if any.
func (e *FormatError) Unwrap() error {
	return e.Err
}
