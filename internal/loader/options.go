package loader

import "go.uber.org/zap"

// DefaultMaxHeaderSize bounds the JSON header of a file.
const DefaultMaxHeaderSize = 100 * 1024 * 1024

// Options configures Open and Parse.
type Options struct {
	// Logger receives open/close events. Defaults to zap.NewNop().
	Logger *zap.Logger
	// Mmap memory maps uncompressed files instead of reading them.
	// Ignored on platforms without mmap support.
	Mmap bool
	// MaxHeaderSize defaults to DefaultMaxHeaderSize.
	MaxHeaderSize uint64
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.MaxHeaderSize == 0 {
		o.MaxHeaderSize = DefaultMaxHeaderSize
	}
}
