// Package loader opens SafeTensors files as zero-copy tensor views.
//
// This package wraps the internal loader implementation and exports a clean
// public API.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/tensorview/loader"
//	)
//
//	f, err := loader.Open("model.safetensors", loader.Options{Mmap: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	view, err := f.View("dense.weight")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	weights, err := view.F32()
package loader

import (
	"io"

	"github.com/born-ml/tensorview/internal/loader"
)

// File is an opened SafeTensors file.
type File = loader.File

// Options configures Open and Parse.
type Options = loader.Options

// Info describes a stored tensor.
type Info = loader.Info

// DType is a SafeTensors dtype name such as "F32".
type DType = loader.DType

// NamedView pairs a view with the name it is stored under.
type NamedView = loader.NamedView

// ValidationError describes a malformed file or write request.
type ValidationError = loader.ValidationError

// Errors.
var (
	ErrTensorNotFound   = loader.ErrTensorNotFound
	ErrHeaderTooLarge   = loader.ErrHeaderTooLarge
	ErrOutOfBounds      = loader.ErrOutOfBounds
	ErrUnsupportedDType = loader.ErrUnsupportedDType
	ErrClosed           = loader.ErrClosed
)

// Open opens a SafeTensors file. A ".zst" suffix means zstd compressed.
func Open(path string, opts Options) (*File, error) {
	return loader.Open(path, opts)
}

// Parse parses SafeTensors data held in memory. The buffer is borrowed.
func Parse(data []byte, opts Options) (*File, error) {
	return loader.Parse(data, opts)
}

// Write writes tensors in SafeTensors format.
func Write(w io.Writer, tensors []NamedView, metadata map[string]string) error {
	return loader.Write(w, tensors, metadata)
}

// WriteFile writes tensors to path, compressing with zstd for a ".zst" suffix.
func WriteFile(path string, tensors []NamedView, metadata map[string]string) error {
	return loader.WriteFile(path, tensors, metadata)
}
