package bofhist

import (
	"strconv"

	"github.com/pkg/errors"
)

// Decode parses the code which follows pattern in s.
// Returns an error wrapping ErrInvalidConfig if s does not start with pattern
// or the rest of s is not an integer in [0, n).
func Decode(s, pattern string, n int) (int, error) {
	if len(s) < len(pattern) || s[:len(pattern)] != pattern {
		return 0, errors.Wrapf(ErrInvalidConfig, "wrong pattern specified: %q does not start with %q", s, pattern)
	}
	suffix := s[len(pattern):]
	code, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "parse code %q: %v", suffix, err)
	}
	if code < 0 || code >= n {
		return 0, errors.Wrapf(ErrInvalidConfig, "code %d not in [0, %d)", code, n)
	}
	return code, nil
}
