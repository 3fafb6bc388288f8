package bofhist

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func makeRows(pattern string, images []interface{}, codes []int) []Row {
	rows := make([]Row, len(images))
	for i := range images {
		rows[i] = Row{Value: fmt.Sprintf("%s%d", pattern, codes[i]), Image: images[i]}
	}
	return rows
}

func TestHistogram(t *testing.T) {
	rows := makeRows("c_", []interface{}{"A", "A", "B", "B", "B", "A"}, []int{0, 1, 2, 2, 0, 1})
	got, err := Histogram(context.Background(), rows, Config{Pattern: "c_", Range: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{Counts: []int{1, 1, 0}, Image: "A"},
		{Counts: []int{1, 0, 2}, Image: "B"},
		{Counts: []int{0, 1, 0}, Image: "A"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestHistogram_single(t *testing.T) {
	rows := makeRows("", []interface{}{42}, []int{4})
	got, err := Histogram(context.Background(), rows, Config{Range: 5})
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{Counts: []int{0, 0, 0, 0, 1}, Image: "42"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestHistogram_empty(t *testing.T) {
	got, err := Histogram(context.Background(), nil, Config{Range: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no records, got %d", len(got))
	}
}

// Identities which would collide with a zero sentinel must still split runs.
func TestHistogram_zeroIdentity(t *testing.T) {
	rows := makeRows("", []interface{}{0, 1, 1, 0}, []int{0, 0, 1, 1})
	got, err := Histogram(context.Background(), rows, Config{Range: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{Counts: []int{1, 0}, Image: "0"},
		{Counts: []int{1, 1}, Image: "1"},
		{Counts: []int{0, 1}, Image: "0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

// Records must not share memory with the accumulator or each other.
func TestHistogram_snapshot(t *testing.T) {
	rows := makeRows("", []interface{}{"a", "b", "c"}, []int{0, 0, 0})
	h, err := New(Config{Range: 1})
	if err != nil {
		t.Fatal(err)
	}
	got, err := h.Run(context.Background(), &SliceReader{Rows: rows})
	if err != nil {
		t.Fatal(err)
	}
	got[0].Counts[0] = 100
	for i := 1; i < len(got); i++ {
		if got[i].Counts[0] != 1 {
			t.Errorf("record %d: want count 1, got %d", i, got[i].Counts[0])
		}
	}
	again, err := h.Run(context.Background(), &SliceReader{Rows: rows})
	if err != nil {
		t.Fatal(err)
	}
	if again[0].Counts[0] != 1 {
		t.Errorf("re-used accumulator: want count 1, got %d", again[0].Counts[0])
	}
}

func TestHistogram_invalid(t *testing.T) {
	cases := []struct {
		rows []Row
		cfg  Config
	}{
		{[]Row{{"c_1", "A"}, {"x_1", "A"}}, Config{Pattern: "c_", Range: 10}},
		{[]Row{{"c_1", "A"}, {"c_10", "B"}}, Config{Pattern: "c_", Range: 10}},
		{[]Row{{"c_one", "A"}}, Config{Pattern: "c_", Range: 10}},
		{[]Row{{"c_0", "A"}}, Config{Pattern: "c_", Range: 0}},
	}
	for i, c := range cases {
		got, err := Histogram(context.Background(), c.rows, c.cfg)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: want invalid config, got %v", i, err)
		}
		if got != nil {
			t.Errorf("case %d: want no records", i)
		}
	}
}

func TestHistogram_progress(t *testing.T) {
	rows := makeRows("", []interface{}{1, 1, 2, 3, 3, 3}, []int{0, 0, 0, 0, 0, 0})
	h, err := New(Config{Range: 1})
	if err != nil {
		t.Fatal(err)
	}
	var calls [][2]int
	h.Progress = func(runs, rows int) {
		calls = append(calls, [2]int{runs, rows})
	}
	if _, err := h.Run(context.Background(), &SliceReader{Rows: rows}); err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{1, 2}, {2, 3}, {3, 6}}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestHistogram_canceled(t *testing.T) {
	rows := makeRows("", []interface{}{1, 2, 3}, []int{0, 0, 0})
	h, err := New(Config{Range: 1})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Cancel while the second run is being accumulated.
	h.Progress = func(runs, rows int) {
		if runs == 1 {
			cancel()
		}
	}
	got, err := h.Run(ctx, &SliceReader{Rows: rows})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Errorf("want partial records discarded, got %d", len(got))
	}
}

type failReader struct{ n int }

func (r *failReader) Read() (Row, error) {
	if r.n == 0 {
		return Row{}, errors.New("disk on fire")
	}
	r.n--
	return Row{Value: "0", Image: "A"}, nil
}

func TestHistogram_readError(t *testing.T) {
	h, err := New(Config{Range: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Run(context.Background(), &failReader{n: 2}); err == nil {
		t.Fatal("want error")
	}
}
