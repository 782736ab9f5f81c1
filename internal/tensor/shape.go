package tensor

import (
	"strconv"
	"strings"
)

// Shape describes a tensor's element type and dimensions.
//
// A Shape is immutable: the element type is fixed at construction and the
// dimensions are never handed out by reference.
type Shape struct {
	elementType ElementType
	dimensions  []int
}

// NewShape creates a shape. The dimensions are copied.
func NewShape(elementType ElementType, dims ...int) Shape {
	return Shape{
		elementType: elementType,
		dimensions:  append([]int(nil), dims...),
	}
}

// ElementType returns the declared element type.
func (s Shape) ElementType() ElementType {
	return s.elementType
}

// Dimensions returns a copy of the dimensions.
func (s Shape) Dimensions() []int {
	return append([]int(nil), s.dimensions...)
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.dimensions)
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s.dimensions {
		n *= dim
	}
	return n
}

// Size returns the number of bytes a tensor with this shape takes up.
func (s Shape) Size() int {
	return s.NumElements() * s.elementType.Size()
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if s.elementType != other.elementType || len(s.dimensions) != len(other.dimensions) {
		return false
	}
	for i := range s.dimensions {
		if s.dimensions[i] != other.dimensions[i] {
			return false
		}
	}
	return true
}

// String formats the shape as "f32[1, 2, 3]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteString(s.elementType.String())
	b.WriteByte('[')
	for i, dim := range s.dimensions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(']')
	return b.String()
}

// ParseShape parses the format produced by Shape.String.
//
//	ParseShape("f32[1, 2, 3]") // f32 with dimensions [1 2 3]
//	ParseShape("u8[]")         // rank-0 u8
func ParseShape(s string) (Shape, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return Shape{}, &FormatError{Kind: Malformed}
	}
	name := strings.TrimSpace(s[:open])
	et, err := ParseElementType(name)
	if err != nil {
		return Shape{}, &FormatError{Kind: UnknownElementType, Found: name}
	}

	closing := strings.LastIndexByte(s, ']')
	if closing < open {
		return Shape{}, &FormatError{Kind: Malformed}
	}

	between := strings.TrimSpace(s[open+1 : closing])
	if between == "" {
		return Shape{elementType: et}, nil
	}

	words := strings.Split(between, ",")
	dims := make([]int, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		dim, err := strconv.ParseUint(word, 10, strconv.IntSize-1)
		if err != nil {
			return Shape{}, &FormatError{Kind: BadDimension, Found: word, Err: err}
		}
		dims = append(dims, int(dim))
	}

	return Shape{elementType: et, dimensions: dims}, nil
}
