//go:build !unix

package loader

import (
	"os"

	"github.com/go-faster/errors"
)

const mmapSupported = false

func mmapFile(*os.File, int64) ([]byte, error) {
	return nil, errors.New("mmap not supported")
}

func munmapFile([]byte) error {
	return nil
}
