package main

import (
	"encoding/csv"
	"io"

	"github.com/jvlmdr/bof/go/bofhist"
)

// csvReader reads rows from a table with a header.
type csvReader struct {
	r           *csv.Reader
	code, ident int
}

// newCSVReader reads the header and finds the columns.
// Without an image column, all rows belong to one image.
func newCSVReader(r io.Reader, column, imageColumn string) (*csvReader, error) {
	rr := csv.NewReader(r)
	header, err := rr.Read()
	if err != nil {
		return nil, err
	}
	code, err := bofhist.ColumnIndex(header, column)
	if err != nil {
		return nil, err
	}
	ident := -1
	if imageColumn != "" {
		ident, err = bofhist.ColumnIndex(header, imageColumn)
		if err != nil {
			return nil, err
		}
	}
	return &csvReader{rr, code, ident}, nil
}

func (r *csvReader) Read() (bofhist.Row, error) {
	rec, err := r.r.Read()
	if err != nil {
		return bofhist.Row{}, err
	}
	row := bofhist.Row{Value: rec[r.code], Image: ""}
	if r.ident >= 0 {
		row.Image = rec[r.ident]
	}
	return row, nil
}
