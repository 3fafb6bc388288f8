package bofhist

import "io"

// Row is one input record.
type Row struct {
	// Value is the pattern followed by a decimal code.
	Value string
	// Image identifies the source image.
	// It must be comparable with ==.
	Image interface{}
}

// RowReader supplies rows in order.
// Read returns io.EOF after the last row.
type RowReader interface {
	Read() (Row, error)
}

// SliceReader reads rows from memory.
type SliceReader struct {
	Rows []Row
	pos  int
}

func (r *SliceReader) Read() (Row, error) {
	if r.pos >= len(r.Rows) {
		return Row{}, io.EOF
	}
	row := r.Rows[r.pos]
	r.pos++
	return row, nil
}
