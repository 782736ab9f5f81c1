// Package loader opens SafeTensors files and exposes their tensors as zero-copy
// tensor.View values.
//
// SafeTensors layout:
//
//	[8 bytes: header size (uint64 LE)]
//	[header size bytes: JSON header, space padded]
//	[tensor data: raw bytes]
//
// The whole file is either memory mapped (Options.Mmap on unix) or read into a
// single buffer, and each View borrows its region of that buffer. Views are
// only valid until File.Close. Memory mapped views are read-only; writing
// through them faults.
//
// Files ending in ".zst" are zstd compressed as a whole and are always
// decompressed into memory.
//
// Example:
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
