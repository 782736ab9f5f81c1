package loader

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Common errors.
var (
	ErrTensorNotFound   = errors.New("tensor not found")
	ErrHeaderTooLarge   = errors.New("header exceeds maximum size")
	ErrOutOfBounds      = errors.New("tensor extends beyond data section")
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrClosed           = errors.New("file is closed")
)

// ValidationError provides detailed information about a malformed header.
type ValidationError struct {
	Type    string // Type of error (e.g., "offset_overlap", "size_mismatch")
	Tensor  string // Primary tensor name involved
	Tensor2 string // Secondary tensor name (for overlap errors)
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Tensor2 != "" {
		return fmt.Sprintf("%s: tensors %q and %q: %s", e.Type, e.Tensor, e.Tensor2, e.Details)
	}
	if e.Tensor != "" {
		return fmt.Sprintf("%s: tensor %q: %s", e.Type, e.Tensor, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
