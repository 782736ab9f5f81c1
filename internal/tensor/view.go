package tensor

import "unsafe"

// View is a typed, zero-copy window over a borrowed byte buffer.
//
// The view never allocates, copies or frees the buffer. Typed slices returned
// by the As* family alias the same memory, so writes through one are visible
// through every other alias. Callers are responsible for serializing
// concurrent writes and for keeping the buffer alive while the view is used.
//
// Elements are read in the host's native byte order.
type View struct {
	shape Shape
	data  []byte
}

// NewView creates a view over data described by shape.
// No size check is performed; it is deferred to interpretation.
func NewView(shape Shape, data []byte) View {
	return View{shape: shape, data: data}
}

// Shape returns the view's shape.
func (v View) Shape() Shape {
	return v.shape
}

// ElementType returns the declared element type.
func (v View) ElementType() ElementType {
	return v.shape.ElementType()
}

// Dimensions returns a copy of the declared dimensions.
func (v View) Dimensions() []int {
	return v.shape.Dimensions()
}

// Bytes returns the borrowed buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (v View) Bytes() []byte {
	return v.data
}

// Len returns the buffer length in bytes.
func (v View) Len() int {
	return len(v.data)
}

// As interprets the view as []T.
//
// It fails with *TypeMismatchError unless T matches the declared element type,
// even when the byte widths agree (int32 vs uint32). The element count is
// len(Bytes()) / sizeof(T); trailing bytes that do not fill an element are
// ignored.
func As[T Element](v View) ([]T, error) {
	requested := ElementTypeOf[T]()
	if requested != v.shape.ElementType() {
		return nil, &TypeMismatchError{Shape: v.shape, Requested: requested}
	}
	return reinterpret[T](v.data), nil
}

// reinterpret casts b to []T without copying.
func reinterpret[T Element](b []byte) []T {
	var zero T
	n := len(b) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounded by len(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// InterpretAs interprets the view as the slice type matching et, e.g.
// []float32 for F32, returned as any.
func (v View) InterpretAs(et ElementType) (any, error) {
	switch et {
	case F64:
		return v.F64()
	case F32:
		return v.F32()
	case I64:
		return v.I64()
	case I32:
		return v.I32()
	case I16:
		return v.I16()
	case I8:
		return v.I8()
	case U64:
		return v.U64()
	case U32:
		return v.U32()
	case U16:
		return v.U16()
	case U8:
		return v.U8()
	default:
		return nil, &TypeMismatchError{Shape: v.shape, Requested: et}
	}
}

// F64 interprets the data as []float64.
func (v View) F64() ([]float64, error) { return As[float64](v) }

// F32 interprets the data as []float32.
func (v View) F32() ([]float32, error) { return As[float32](v) }

// I64 interprets the data as []int64.
func (v View) I64() ([]int64, error) { return As[int64](v) }

// I32 interprets the data as []int32.
func (v View) I32() ([]int32, error) { return As[int32](v) }

// I16 interprets the data as []int16.
func (v View) I16() ([]int16, error) { return As[int16](v) }

// I8 interprets the data as []int8.
func (v View) I8() ([]int8, error) { return As[int8](v) }

// U64 interprets the data as []uint64.
func (v View) U64() ([]uint64, error) { return As[uint64](v) }

// U32 interprets the data as []uint32.
func (v View) U32() ([]uint32, error) { return As[uint32](v) }

// U16 interprets the data as []uint16.
func (v View) U16() ([]uint16, error) { return As[uint16](v) }

// U8 interprets the data as []uint8.
func (v View) U8() ([]uint8, error) {
	if v.shape.ElementType() != U8 {
		return nil, &TypeMismatchError{Shape: v.shape, Requested: U8}
	}
	if v.data == nil {
		return []uint8{}, nil
	}
	return v.data, nil // Already []byte = []uint8
}
