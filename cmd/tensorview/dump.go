package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/born-ml/tensorview/internal/tensor"
)

func runDump(args []string, lg *zap.Logger, w io.Writer) error {
	set := flag.NewFlagSet("dump", flag.ContinueOnError)
	as := set.String("as", "", "element type to interpret as (default: declared)")
	limit := set.Int("limit", 0, "print at most N elements (0 prints all)")
	noMmap := set.Bool("no-mmap", false, "read the file instead of memory mapping it")
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "flags")
	}
	if set.NArg() < 2 {
		return errors.New("usage: dump [-as KIND] [-limit N] FILE NAME")
	}

	f, err := openFile(set, *noMmap, lg)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	view, err := f.View(set.Arg(1))
	if err != nil {
		return errors.Wrap(err, "view")
	}

	kind := view.ElementType()
	if *as != "" {
		if kind, err = tensor.ParseElementType(*as); err != nil {
			return errors.Wrap(err, "-as")
		}
	}

	data, err := view.InterpretAs(kind)
	if err != nil {
		return errors.Wrapf(err, "interpret %q", set.Arg(1))
	}
	lg.Debug("Dump", zap.Stringer("shape", view.Shape()), zap.Stringer("as", kind))

	switch d := data.(type) {
	case []float64:
		return printValues(w, d, *limit)
	case []float32:
		return printValues(w, d, *limit)
	case []int64:
		return printValues(w, d, *limit)
	case []int32:
		return printValues(w, d, *limit)
	case []int16:
		return printValues(w, d, *limit)
	case []int8:
		return printValues(w, d, *limit)
	case []uint64:
		return printValues(w, d, *limit)
	case []uint32:
		return printValues(w, d, *limit)
	case []uint16:
		return printValues(w, d, *limit)
	case []uint8:
		return printValues(w, d, *limit)
	default:
		return errors.Errorf("unexpected %T", data)
	}
}

func printValues[T tensor.Element](w io.Writer, values []T, limit int) error {
	if limit > 0 && limit < len(values) {
		values = values[:limit]
	}
	for i, v := range values {
		if _, err := fmt.Fprintf(w, "%d\t%v\n", i, v); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}
