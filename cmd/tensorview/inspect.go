package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/born-ml/tensorview/internal/loader"
)

func openFile(set *flag.FlagSet, noMmap bool, lg *zap.Logger) (*loader.File, error) {
	if set.NArg() < 1 {
		return nil, errors.New("missing FILE argument")
	}
	f, err := loader.Open(set.Arg(0), loader.Options{Logger: lg, Mmap: !noMmap})
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	return f, nil
}

func runInspect(args []string, lg *zap.Logger, w io.Writer) error {
	set := flag.NewFlagSet("inspect", flag.ContinueOnError)
	noMmap := set.Bool("no-mmap", false, "read the file instead of memory mapping it")
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "flags")
	}

	f, err := openFile(set, *noMmap, lg)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var total uint64
	for _, name := range f.Names() {
		info, err := f.Info(name)
		if err != nil {
			return err
		}

		shape := fmt.Sprintf("%s%v", info.DType, info.Dims)
		if s, err := info.Shape(); err == nil {
			shape = s.String()
		}
		size := uint64(info.Size) //nolint:gosec // G115: validated non-negative
		total += size
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", name, shape, humanize.Bytes(size))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	_, _ = fmt.Fprintf(w, "%d tensors, %s\n", f.Len(), humanize.Bytes(total))

	metadata := f.Metadata()
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s = %s\n", k, metadata[k])
	}

	return nil
}
