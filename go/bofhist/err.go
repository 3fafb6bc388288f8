package bofhist

import "github.com/pkg/errors"

// ErrInvalidConfig is returned when the configuration does not match the data.
// It aborts the whole operation.
var ErrInvalidConfig = errors.New("invalid configuration")
