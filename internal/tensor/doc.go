// Package tensor provides shapes and zero-copy typed views over raw tensor bytes.
//
// A View pairs a Shape (element type plus dimensions) with a borrowed byte
// buffer. Interpreting the view yields a Go slice that aliases the buffer:
//
//	shape := tensor.NewShape(tensor.F32, 2, 3)
//	view := tensor.NewView(shape, buf) // buf is 24 bytes
//	data, err := view.F32()            // []float32 of length 6, shares buf
//	_, err = view.I32()                // *TypeMismatchError
//
// The declared element type is the single source of truth: a request for any
// other type fails, even one of the same byte width.
package tensor
