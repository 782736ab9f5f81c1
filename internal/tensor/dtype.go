package tensor

import (
	"errors"
	"fmt"
)

// Element is a constraint for the numeric types a View can be interpreted as.
// It uses Go generics to resolve the element kind at compile time.
type Element interface {
	float64 | float32 | int64 | int32 | int16 | int8 | uint64 | uint32 | uint16 | uint8
}

// ElementType is the runtime tag describing how tensor bytes are laid out.
type ElementType int

// Supported element types.
const (
	F64 ElementType = iota
	F32
	I64
	I32
	I16
	I8
	U64
	U32
	U16
	U8
)

// ErrUnknownElementType is returned when an element type name is not recognised.
var ErrUnknownElementType = errors.New("unknown element type")

var elementTypeNames = [...]string{
	F64: "f64",
	F32: "f32",
	I64: "i64",
	I32: "i32",
	I16: "i16",
	I8:  "i8",
	U64: "u64",
	U32: "u32",
	U16: "u16",
	U8:  "u8",
}

// Valid reports whether et is one of the supported element types.
func (et ElementType) Valid() bool {
	return et >= F64 && et <= U8
}

// Size returns the byte width of a single element.
func (et ElementType) Size() int {
	switch et {
	case F64, I64, U64:
		return 8
	case F32, I32, U32:
		return 4
	case I16, U16:
		return 2
	case I8, U8:
		return 1
	default:
		panic(fmt.Sprintf("unknown element type %d", int(et)))
	}
}

// String returns the short name used in shape strings, e.g. "f32".
func (et ElementType) String() string {
	if !et.Valid() {
		return "unknown"
	}
	return elementTypeNames[et]
}

// ParseElementType parses a short element type name such as "u8" or "f64".
func ParseElementType(s string) (ElementType, error) {
	for i, name := range elementTypeNames {
		if name == s {
			return ElementType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElementType, s)
}

// ElementTypeOf returns the element type matching the Go type T.
func ElementTypeOf[T Element]() ElementType {
	var zero T
	switch any(zero).(type) {
	case float64:
		return F64
	case float32:
		return F32
	case int64:
		return I64
	case int32:
		return I32
	case int16:
		return I16
	case int8:
		return I8
	case uint64:
		return U64
	case uint32:
		return U32
	case uint16:
		return U16
	case uint8:
		return U8
	default:
		panic("unsupported element type")
	}
}
