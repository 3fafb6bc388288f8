package bofhist

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Record is the histogram of one run.
type Record struct {
	Counts []int  `json:"counts"`
	Image  string `json:"image"`
}

// Histogrammer accumulates runs of rows into histograms.
// The accumulator is re-used between runs and calls;
// a Histogrammer must not be used concurrently.
type Histogrammer struct {
	Config
	// Progress, if not nil, is called after each run
	// with the number of runs and rows processed so far.
	Progress func(runs, rows int)

	hist []int
}

// New returns a Histogrammer for a valid configuration.
func New(cfg Config) (*Histogrammer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Histogrammer{Config: cfg, hist: make([]int, cfg.Range)}, nil
}

// Histogram is a shortcut for New followed by Run on a slice.
func Histogram(ctx context.Context, rows []Row, cfg Config) ([]Record, error) {
	h, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return h.Run(ctx, &SliceReader{Rows: rows})
}

// run tracks the current run.
type run struct {
	// Whether any row has been seen.
	started bool
	image   interface{}
	label   string
}

// Run reads all rows and returns one record per run, in input order.
//
// A decode error aborts with an error wrapping ErrInvalidConfig.
// The context is checked after every completed run;
// if it was cancelled, all records are discarded and the context's error is returned.
func (h *Histogrammer) Run(ctx context.Context, r RowReader) ([]Record, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if len(h.hist) != h.Range {
		h.hist = make([]int, h.Range)
	}
	h.clear()

	var (
		records []Record
		cur     run
		rows    int
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", rows)
		}
		code, err := Decode(row.Value, h.Pattern, h.Range)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", rows)
		}
		if cur.started && row.Image != cur.image {
			records = append(records, h.flush(cur.label))
			if err := h.done(ctx, len(records), rows); err != nil {
				return nil, err
			}
			cur.started = false
		}
		if !cur.started {
			cur = run{started: true, image: row.Image, label: fmt.Sprint(row.Image)}
		}
		h.hist[code]++
		rows++
	}
	if cur.started {
		records = append(records, h.flush(cur.label))
		if err := h.done(ctx, len(records), rows); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// flush takes a copy of the accumulator and clears it.
func (h *Histogrammer) flush(label string) Record {
	counts := make([]int, len(h.hist))
	copy(counts, h.hist)
	h.clear()
	return Record{Counts: counts, Image: label}
}

func (h *Histogrammer) clear() {
	for i := range h.hist {
		h.hist[i] = 0
	}
}

func (h *Histogrammer) done(ctx context.Context, runs, rows int) error {
	if h.Progress != nil {
		h.Progress(runs, rows)
	}
	return ctx.Err()
}
