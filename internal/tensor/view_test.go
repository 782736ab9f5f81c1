package tensor

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allElementTypes = []ElementType{F64, F32, I64, I32, I16, I8, U64, U32, U16, U8}

func checkRoundTrip[T Element](t *testing.T, value T) {
	t.Helper()

	et := ElementTypeOf[T]()
	buf := make([]byte, 5*et.Size())
	view := NewView(NewShape(et, 5), buf)

	data, err := As[T](view)
	require.NoError(t, err)
	require.Len(t, data, 5)

	data[3] = value
	again, err := As[T](view)
	require.NoError(t, err)
	assert.Equal(t, value, again[3])

	// The write landed in the original buffer.
	var zero T
	size := int(unsafe.Sizeof(zero))
	assert.NotEqual(t, make([]byte, size), buf[3*size:4*size])

	// The dispatch path returns the same memory.
	anyData, err := view.InterpretAs(et)
	require.NoError(t, err)
	typed, ok := anyData.([]T)
	require.True(t, ok, "InterpretAs(%s) returned %T", et, anyData)
	assert.Equal(t, value, typed[3])
}

func TestViewRoundTrip(t *testing.T) {
	t.Run("f64", func(t *testing.T) { checkRoundTrip(t, math.Pi) })
	t.Run("f32", func(t *testing.T) { checkRoundTrip(t, float32(-1.5)) })
	t.Run("i64", func(t *testing.T) { checkRoundTrip(t, int64(math.MinInt64)) })
	t.Run("i32", func(t *testing.T) { checkRoundTrip(t, int32(-42)) })
	t.Run("i16", func(t *testing.T) { checkRoundTrip(t, int16(-300)) })
	t.Run("i8", func(t *testing.T) { checkRoundTrip(t, int8(-7)) })
	t.Run("u64", func(t *testing.T) { checkRoundTrip(t, uint64(math.MaxUint64)) })
	t.Run("u32", func(t *testing.T) { checkRoundTrip(t, uint32(0xDEADBEEF)) })
	t.Run("u16", func(t *testing.T) { checkRoundTrip(t, uint16(0xBEEF)) })
	t.Run("u8", func(t *testing.T) { checkRoundTrip(t, uint8(255)) })
}

func TestViewAliasesBuffer(t *testing.T) {
	buf := make([]byte, 8)
	view := NewView(NewShape(U32, 2), buf)

	data, err := view.U32()
	require.NoError(t, err)

	// Writes to the buffer show up in the typed slice and vice versa.
	binary.NativeEndian.PutUint32(buf[4:], 7)
	assert.Equal(t, uint32(7), data[1])

	data[0] = 0x01020304
	assert.Equal(t, uint32(0x01020304), binary.NativeEndian.Uint32(buf[:4]))
}

func TestViewTypeMismatch(t *testing.T) {
	for _, declared := range allElementTypes {
		for _, requested := range allElementTypes {
			if declared == requested {
				continue
			}
			t.Run(declared.String()+"_as_"+requested.String(), func(t *testing.T) {
				view := NewView(NewShape(declared, 2), make([]byte, 16))

				data, err := view.InterpretAs(requested)
				assert.Nil(t, data)

				var mismatch *TypeMismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, declared.String(), mismatch.Declared())
				assert.Equal(t, requested.String(), mismatch.RequestedKind())
				assert.ErrorIs(t, err, ErrTypeMismatch)
			})
		}
	}
}

func TestViewTypeMismatchSameWidth(t *testing.T) {
	buf := make([]byte, 16)

	_, err := NewView(NewShape(I32, 4), buf).U32()
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = NewView(NewShape(I64, 2), buf).F64()
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = As[int8](NewView(NewShape(U8, 16), buf))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestViewTypeMismatchEmptyBuffer(t *testing.T) {
	_, err := NewView(NewShape(F32), nil).I32()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestViewInterpretAsUnknown(t *testing.T) {
	_, err := NewView(NewShape(F32, 1), make([]byte, 4)).InterpretAs(ElementType(99))

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "unknown", mismatch.RequestedKind())
}

func TestViewZeroLength(t *testing.T) {
	for _, et := range allElementTypes {
		t.Run(et.String(), func(t *testing.T) {
			for _, buf := range [][]byte{nil, {}} {
				view := NewView(NewShape(et, 0), buf)

				data, err := view.InterpretAs(et)
				require.NoError(t, err)
				require.NotNil(t, data)

				// Every typed result is a non-nil empty slice.
				switch d := data.(type) {
				case []float64:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []float32:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []int64:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []int32:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []int16:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []int8:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []uint64:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []uint32:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []uint16:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				case []uint8:
					assert.Empty(t, d)
					assert.NotNil(t, d)
				default:
					t.Fatalf("unexpected type %T", data)
				}
			}
		})
	}
}

func TestViewTruncatesPartialElement(t *testing.T) {
	// 10 bytes hold two whole f32 values; the trailing 2 bytes are ignored.
	view := NewView(NewShape(F32, 3), make([]byte, 10))
	data, err := view.F32()
	require.NoError(t, err)
	assert.Len(t, data, 2)

	// Fewer bytes than one element gives an empty slice, not an error.
	view = NewView(NewShape(I64, 1), make([]byte, 7))
	ints, err := view.I64()
	require.NoError(t, err)
	assert.Empty(t, ints)
}

func TestViewElementCountIgnoresDimensions(t *testing.T) {
	// The count follows the buffer, not the declared dimensions.
	view := NewView(NewShape(U16, 100), make([]byte, 6))
	data, err := view.U16()
	require.NoError(t, err)
	assert.Len(t, data, 3)
}

func TestViewAccessorsArePure(t *testing.T) {
	dims := []int{2, 3}
	view := NewView(NewShape(F32, dims...), make([]byte, 24))

	for i := 0; i < 3; i++ {
		assert.Equal(t, F32, view.ElementType())
		assert.Equal(t, []int{2, 3}, view.Dimensions())
	}

	// Mutating a returned slice does not reach the shape.
	got := view.Dimensions()
	got[0] = 99
	assert.Equal(t, []int{2, 3}, view.Dimensions())

	// Neither does mutating the slice the shape was built from.
	dims[1] = 42
	assert.Equal(t, []int{2, 3}, view.Dimensions())
}

func TestViewF32Scenario(t *testing.T) {
	values := []float32{1, 2, 3, 4, 5, 6}
	buf := make([]byte, 24)
	for i, v := range values {
		binary.NativeEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}

	view := NewView(NewShape(F32, 2, 3), buf)
	assert.Equal(t, 24, view.Len())

	data, err := view.F32()
	require.NoError(t, err)
	assert.Equal(t, values, data)

	_, err = view.I32()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "f32")
	assert.Contains(t, err.Error(), "i32")
	assert.Equal(t, "Attempting to interpret a f32[2, 3] as a i32 tensor", err.Error())

	var mismatch *TypeMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestViewBytes(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	view := NewView(NewShape(U8, 4), buf)

	assert.Same(t, &buf[0], &view.Bytes()[0])

	data, err := view.U8()
	require.NoError(t, err)
	assert.Same(t, &buf[0], &data[0])
}
