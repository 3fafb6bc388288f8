package bofhist

import (
	"fmt"

	"github.com/pkg/errors"
)

// ImageColumnName is the name of the identity column in the output.
const ImageColumnName = "imgToString"

// Header returns the output column names: one per bin followed by the image.
func Header(n int) []string {
	h := make([]string, n+1)
	for i := 0; i < n; i++ {
		h[i] = fmt.Sprintf("cluster_%d", i)
	}
	h[n] = ImageColumnName
	return h
}

// ColumnIndex finds a column by name.
func ColumnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrInvalidConfig, "input contains no column %q", name)
}
