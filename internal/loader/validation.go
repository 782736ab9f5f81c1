package loader

import (
	"fmt"
	"math"
	"sort"
)

// MaxTensorCount bounds the number of tensors in a single file.
const MaxTensorCount = 100_000

// validateHeader checks names, shapes and offsets of every tensor.
// Malformed files could otherwise hand out views past the end of the buffer.
func validateHeader(h *header, dataSize int64) error {
	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}

	names := make([]string, 0, len(h.Tensors))
	for name, e := range h.Tensors {
		if err := validateEntry(name, e, dataSize); err != nil {
			return err
		}
		// Empty regions hold no bytes and cannot overlap anything.
		if e.DataOffsets[0] == e.DataOffsets[1] {
			continue
		}
		names = append(names, name)
	}

	// Sort by region for overlap detection; ties broken by name for stable errors.
	sort.Slice(names, func(i, j int) bool {
		a, b := h.Tensors[names[i]].DataOffsets, h.Tensors[names[j]].DataOffsets
		if a != b {
			return a[0] < b[0] || (a[0] == b[0] && a[1] < b[1])
		}
		return names[i] < names[j]
	})
	for i := 1; i < len(names); i++ {
		prev, cur := h.Tensors[names[i-1]].DataOffsets, h.Tensors[names[i]].DataOffsets
		if prev[1] > cur[0] {
			return &ValidationError{
				Type:    "offset_overlap",
				Tensor:  names[i-1],
				Tensor2: names[i],
				Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap", prev[0], prev[1], cur[0], cur[1]),
			}
		}
	}

	return nil
}

func validateEntry(name string, e entry, dataSize int64) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty tensor name"}
	}

	for i, dim := range e.Shape {
		if dim < 0 {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  name,
				Details: fmt.Sprintf("dimension %d is %d", i, dim),
			}
		}
	}

	start, end := e.DataOffsets[0], e.DataOffsets[1]
	if start < 0 || end < start {
		return &ValidationError{
			Type:    "invalid_offsets",
			Tensor:  name,
			Details: fmt.Sprintf("[%d, %d]", start, end),
		}
	}
	if end > dataSize {
		return &ValidationError{
			Type:    "out_of_bounds",
			Tensor:  name,
			Details: fmt.Sprintf("end %d > data_size %d", end, dataSize),
		}
	}

	if et, ok := e.DType.ElementType(); ok {
		want, ok := byteSize(e.Shape, et.Size())
		if !ok {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  name,
				Details: fmt.Sprintf("%s%v overflows", e.DType, e.Shape),
			}
		}
		if end-start != want {
			return &ValidationError{
				Type:    "size_mismatch",
				Tensor:  name,
				Details: fmt.Sprintf("%s%v needs %d bytes, got %d", e.DType, e.Shape, want, end-start),
			}
		}
	}

	return nil
}

// byteSize multiplies dims and the element width, reporting false on overflow.
func byteSize(dims []int, width int) (int64, bool) {
	n := int64(width)
	for _, dim := range dims {
		d := int64(dim)
		if d != 0 && n > math.MaxInt64/d {
			return 0, false
		}
		n *= d
	}
	if n > math.MaxInt {
		return 0, false
	}
	return n, true
}
