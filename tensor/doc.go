// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides typed, zero-copy views over raw tensor bytes.
//
// # Overview
//
// A Shape declares an element type and dimensions. A View pairs a Shape with
// a borrowed byte buffer and hands out Go slices that alias that buffer:
//
//	shape := tensor.NewShape(tensor.F32, 2, 3)
//	view := tensor.NewView(shape, buf)   // buf holds 24 bytes
//	values, err := view.F32()            // []float32, len 6, shares buf
//	values[0] = 1                        // visible through buf
//
// # Supported Element Types
//
//   - f64, f32 (floating-point)
//   - i64, i32, i16, i8 (signed integers)
//   - u64, u32, u16, u8 (unsigned integers)
//
// # Type Checking
//
// The declared element type is the only accepted interpretation. Asking for
// any other type returns a *TypeMismatchError, even when the byte widths
// agree:
//
//	_, err := view.I32()
//	// Attempting to interpret a f32[2, 3] as a i32 tensor
//
// # Memory
//
// Views never allocate or copy. The element count is the buffer length divided
// by the element size, rounded down. Values are read in native byte order.
package tensor
