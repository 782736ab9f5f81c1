// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorview/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for the Go types a View can be interpreted as.
type Element = tensor.Element

// ElementType is the runtime tag describing tensor bytes.
type ElementType = tensor.ElementType

// Element type constants.
const (
	F64 ElementType = tensor.F64
	F32 ElementType = tensor.F32
	I64 ElementType = tensor.I64
	I32 ElementType = tensor.I32
	I16 ElementType = tensor.I16
	I8  ElementType = tensor.I8
	U64 ElementType = tensor.U64
	U32 ElementType = tensor.U32
	U16 ElementType = tensor.U16
	U8  ElementType = tensor.U8
)

// Shape declares a tensor's element type and dimensions.
// Example: NewShape(F32, 2, 3) formats as "f32[2, 3]".
type Shape = tensor.Shape

// View is a zero-copy typed window over a borrowed byte buffer.
type View = tensor.View

// TypeMismatchError is returned when a View is read as the wrong element type.
type TypeMismatchError = tensor.TypeMismatchError

// FormatError is returned by ParseShape.
type FormatError = tensor.FormatError

// Errors.
var (
	ErrTypeMismatch       = tensor.ErrTypeMismatch
	ErrUnknownElementType = tensor.ErrUnknownElementType
)

// NewShape creates a shape. The dimensions are copied.
func NewShape(elementType ElementType, dims ...int) Shape {
	return tensor.NewShape(elementType, dims...)
}

// ParseShape parses the "f32[1, 2, 3]" format.
func ParseShape(s string) (Shape, error) {
	return tensor.ParseShape(s)
}

// ParseElementType parses a short element type name such as "f32".
func ParseElementType(s string) (ElementType, error) {
	return tensor.ParseElementType(s)
}

// ElementTypeOf returns the element type matching T.
func ElementTypeOf[T Element]() ElementType {
	return tensor.ElementTypeOf[T]()
}

// NewView creates a view over data. The data is borrowed, not copied.
func NewView(shape Shape, data []byte) View {
	return tensor.NewView(shape, data)
}

// As interprets v as []T, failing with *TypeMismatchError unless T is the
// declared element type.
func As[T Element](v View) ([]T, error) {
	return tensor.As[T](v)
}
