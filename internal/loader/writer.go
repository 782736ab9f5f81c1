package loader

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"

	"github.com/born-ml/tensorview/internal/tensor"
)

// headerAlignment pads the JSON header so the data section starts 8-byte aligned.
const headerAlignment = 8

// NamedView is a view paired with the name it is stored under.
type NamedView struct {
	Name string
	View tensor.View
}

// Write writes tensors in SafeTensors format.
//
// Tensors are laid out by descending element size, then by name, so every
// tensor starts at an offset aligned to its element size. Each view's byte
// length must match its declared shape.
func Write(w io.Writer, tensors []NamedView, metadata map[string]string) error {
	for _, t := range tensors {
		if et := t.View.ElementType(); !et.Valid() {
			return &ValidationError{
				Type:    "invalid_dtype",
				Tensor:  t.Name,
				Details: fmt.Sprintf("element type %d", int(et)),
			}
		}
	}

	sorted := make([]NamedView, len(tensors))
	copy(sorted, tensors)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].View.ElementType().Size(), sorted[j].View.ElementType().Size()
		if si != sj {
			return si > sj
		}
		return sorted[i].Name < sorted[j].Name
	})

	hdr := make(map[string]any, len(sorted)+1)
	if len(metadata) > 0 {
		hdr[metadataKey] = metadata
	}

	var offset int64
	for _, t := range sorted {
		if t.Name == "" || t.Name == metadataKey {
			return &ValidationError{Type: "invalid_name", Tensor: t.Name, Details: "reserved or empty name"}
		}
		if _, dup := hdr[t.Name]; dup {
			return &ValidationError{Type: "duplicate_name", Tensor: t.Name, Details: "name used twice"}
		}

		shape := t.View.Shape()
		size := int64(t.View.Len())
		if want := int64(shape.Size()); size != want {
			return &ValidationError{
				Type:    "size_mismatch",
				Tensor:  t.Name,
				Details: fmt.Sprintf("%s needs %d bytes, got %d", shape, want, size),
			}
		}

		dims := shape.Dimensions()
		if dims == nil {
			dims = []int{}
		}
		hdr[t.Name] = entry{
			DType:       DTypeOf(shape.ElementType()),
			Shape:       dims,
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
	}

	headerJSON, err := json.Marshal(hdr)
	if err != nil {
		return errors.Wrap(err, "marshal header")
	}
	if pad := len(headerJSON) % headerAlignment; pad != 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte(" "), headerAlignment-pad)...)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, t := range sorted {
		if _, err := w.Write(t.View.Bytes()); err != nil {
			return errors.Wrapf(err, "write tensor %q", t.Name)
		}
	}

	return nil
}

// WriteFile writes tensors to path. A ".zst" suffix compresses the file with zstd.
func WriteFile(path string, tensors []NamedView, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create")
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	if !strings.HasSuffix(path, ".zst") {
		return Write(file, tensors, metadata)
	}

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return errors.Wrap(err, "zstd")
	}
	return multierr.Append(Write(enc, tensors, metadata), enc.Close())
}
