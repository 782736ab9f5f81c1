package loader

import (
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
	"go.uber.org/zap"

	"github.com/born-ml/tensorview/internal/tensor"
)

// DType is a SafeTensors dtype name.
type DType string

// SafeTensors dtypes. Only the ones with a tensor.ElementType can be viewed.
const (
	F64  DType = "F64"
	F32  DType = "F32"
	I64  DType = "I64"
	I32  DType = "I32"
	I16  DType = "I16"
	I8   DType = "I8"
	U64  DType = "U64"
	U32  DType = "U32"
	U16  DType = "U16"
	U8   DType = "U8"
	F16  DType = "F16"
	BF16 DType = "BF16"
	Bool DType = "BOOL"
)

var dtypeElementTypes = map[DType]tensor.ElementType{
	F64: tensor.F64,
	F32: tensor.F32,
	I64: tensor.I64,
	I32: tensor.I32,
	I16: tensor.I16,
	I8:  tensor.I8,
	U64: tensor.U64,
	U32: tensor.U32,
	U16: tensor.U16,
	U8:  tensor.U8,
}

// ElementType returns the element type for d, if it has one.
func (d DType) ElementType() (tensor.ElementType, bool) {
	et, ok := dtypeElementTypes[d]
	return et, ok
}

// DTypeOf returns the SafeTensors dtype name for an element type.
func DTypeOf(et tensor.ElementType) DType {
	return DType(strings.ToUpper(et.String()))
}

const metadataKey = "__metadata__"

// entry is a tensor record in the JSON header.
type entry struct {
	DType       DType    `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end]
}

// header is the decoded JSON header.
type header struct {
	Metadata map[string]string
	Tensors  map[string]entry
}

// UnmarshalJSON implements custom JSON unmarshaling for header.
func (h *header) UnmarshalJSON(data []byte) error {
	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawMap); err != nil {
		return err
	}

	if metadataRaw, ok := rawMap[metadataKey]; ok {
		if err := json.Unmarshal(metadataRaw, &h.Metadata); err != nil {
			return errors.Wrap(err, "metadata")
		}
	}

	h.Tensors = make(map[string]entry, len(rawMap))
	for key, value := range rawMap {
		if key == metadataKey {
			continue
		}
		var e entry
		if err := json.Unmarshal(value, &e); err != nil {
			return errors.Wrapf(err, "tensor %q", key)
		}
		h.Tensors[key] = e
	}

	return nil
}

// Info describes a tensor stored in a File.
type Info struct {
	Name   string
	DType  DType
	Dims   []int
	Offset int64 // Offset from the start of the data section
	Size   int64 // Size in bytes
}

// Shape returns the tensor shape, or ErrUnsupportedDType if the dtype has no
// element type.
func (i Info) Shape() (tensor.Shape, error) {
	et, ok := i.DType.ElementType()
	if !ok {
		return tensor.Shape{}, errors.Wrapf(ErrUnsupportedDType, "tensor %q: %s", i.Name, i.DType)
	}
	return tensor.NewShape(et, i.Dims...), nil
}

// File is an opened SafeTensors file.
type File struct {
	lg         *zap.Logger
	source     string
	data       []byte
	file       *os.File // Set when data is memory mapped
	header     header
	dataOffset int64
	closed     bool
}

// Open opens a SafeTensors file. A ".zst" suffix means the whole file is
// zstd compressed.
//
// Important: Always call Close() when done (use defer).
func Open(path string, opts Options) (*File, error) {
	opts.setDefaults()

	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "stat")
	}

	var (
		data   []byte
		mapped bool
	)
	switch {
	case strings.HasSuffix(path, ".zst"):
		data, err = decompress(file)
	case opts.Mmap && mmapSupported && stat.Size() > 0:
		data, err = mmapFile(file, stat.Size())
		mapped = err == nil
	default:
		data, err = io.ReadAll(file)
	}
	if !mapped {
		err = multierr.Append(err, file.Close())
		file = nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	f, err := newFile(path, data, opts)
	if err != nil {
		if mapped {
			err = multierr.Combine(err, munmapFile(data), file.Close())
		}
		return nil, err
	}
	f.file = file

	opts.Logger.Info("Opened tensor file",
		zap.String("path", path),
		zap.Int("tensors", len(f.header.Tensors)),
		zap.Int("bytes", len(data)),
		zap.Bool("mmap", mapped),
	)
	return f, nil
}

func decompress(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "zstd")
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrap(err, "decompress")
	}
	return data, nil
}

// Parse parses SafeTensors data held in memory. The buffer is borrowed: views
// returned by the File alias it.
func Parse(data []byte, opts Options) (*File, error) {
	opts.setDefaults()
	return newFile("memory", data, opts)
}

func newFile(source string, data []byte, opts Options) (*File, error) {
	if len(data) < 8 {
		return nil, &ValidationError{
			Type:    "truncated",
			Details: fmt.Sprintf("%d bytes, need at least 8", len(data)),
		}
	}

	headerSize := binary.LittleEndian.Uint64(data[:8])
	if headerSize > opts.MaxHeaderSize {
		return nil, errors.Wrapf(ErrHeaderTooLarge, "%d > %d", headerSize, opts.MaxHeaderSize)
	}
	if headerSize > uint64(len(data)-8) {
		return nil, &ValidationError{
			Type:    "header_out_of_bounds",
			Details: fmt.Sprintf("header size %d, file size %d", headerSize, len(data)),
		}
	}

	dataOffset := int64(8 + headerSize) //nolint:gosec // G115: bounded by len(data)

	var h header
	if err := json.Unmarshal(data[8:dataOffset], &h); err != nil {
		return nil, errors.Wrap(err, "parse header")
	}

	if err := validateHeader(&h, int64(len(data))-dataOffset); err != nil {
		return nil, err
	}

	f := &File{
		lg:         opts.Logger,
		source:     source,
		data:       data,
		header:     h,
		dataOffset: dataOffset,
	}

	for _, name := range f.Names() {
		if ce := f.lg.Check(zap.DebugLevel, "Tensor"); ce != nil {
			e := h.Tensors[name]
			ce.Write(
				zap.String("name", name),
				zap.String("dtype", string(e.DType)),
				zap.Ints("shape", e.Shape),
				zap.Int64("offset", e.DataOffsets[0]),
			)
		}
	}

	return f, nil
}

// Names returns the tensor names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.header.Tensors))
	for name := range f.header.Tensors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tensors.
func (f *File) Len() int {
	return len(f.header.Tensors)
}

// Metadata returns a copy of the "__metadata__" map.
func (f *File) Metadata() map[string]string {
	out := make(map[string]string, len(f.header.Metadata))
	for k, v := range f.header.Metadata {
		out[k] = v
	}
	return out
}

// Info returns information about a specific tensor.
func (f *File) Info(name string) (Info, error) {
	e, ok := f.header.Tensors[name]
	if !ok {
		return Info{}, errors.Wrapf(ErrTensorNotFound, "tensor %q", name)
	}
	return Info{
		Name:   name,
		DType:  e.DType,
		Dims:   append([]int(nil), e.Shape...),
		Offset: e.DataOffsets[0],
		Size:   e.DataOffsets[1] - e.DataOffsets[0],
	}, nil
}

// View returns a zero-copy view of a tensor's bytes.
// The view is valid only while the file is open.
func (f *File) View(name string) (tensor.View, error) {
	if f.closed {
		return tensor.View{}, ErrClosed
	}

	info, err := f.Info(name)
	if err != nil {
		return tensor.View{}, err
	}
	shape, err := info.Shape()
	if err != nil {
		return tensor.View{}, err
	}

	start := f.dataOffset + info.Offset
	end := start + info.Size
	if end > int64(len(f.data)) {
		return tensor.View{}, errors.Wrapf(ErrOutOfBounds, "tensor %q: end %d > %d", name, end, len(f.data))
	}

	// Cap the slice so appends through the view cannot reach the next tensor.
	return tensor.NewView(shape, f.data[start:end:end]), nil
}

// Close releases the file buffer. It is safe to call Close more than once.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var err error
	if f.file != nil {
		err = multierr.Combine(munmapFile(f.data), f.file.Close())
		f.file = nil
	}
	f.data = nil

	f.lg.Info("Closed tensor file", zap.String("path", f.source))
	return err
}
