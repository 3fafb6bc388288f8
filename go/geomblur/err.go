package geomblur

import "github.com/pkg/errors"

// ErrPrecondition is returned when the scale-space or a keypoint cannot be sampled.
var ErrPrecondition = errors.New("precondition violated")
