package scalespace

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrPrecondition is returned when the input or the options cannot be used.
	ErrPrecondition = errors.New("precondition violated")
	// ErrSliceFailure is returned in strict mode when blurring a slice fails.
	ErrSliceFailure = errors.New("slice processing failed")
)

// SliceError describes a failure to blur one channel at one level.
type SliceError struct {
	Level   int
	Channel int
	Sigma   float64
	Err     error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("level %d, channel %d (sigma %.4g): %v", e.Level, e.Channel, e.Sigma, e.Err)
}

func (e *SliceError) Unwrap() error {
	return e.Err
}
