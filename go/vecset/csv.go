package vecset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// EncodeCSV writes one record per vector.
// If labels is not nil, labels[i] is appended to record i.
// The header is written first unless it is nil
// and must contain a name for every column, including the label.
func EncodeCSV(w io.Writer, header []string, set Set, labels []string) error {
	n, dim := set.Len(), set.Dim()
	cols := dim
	if labels != nil {
		if len(labels) != n {
			return fmt.Errorf("number of labels: want %d, got %d", n, len(labels))
		}
		cols++
	}
	// The dimension of an empty set is unknown.
	if n > 0 && header != nil && len(header) != cols {
		return fmt.Errorf("number of columns: want %d, got %d", cols, len(header))
	}

	ww := csv.NewWriter(w)
	if header != nil {
		if err := ww.Write(header); err != nil {
			return err
		}
	}
	rec := make([]string, cols)
	for i := 0; i < n; i++ {
		x := set.At(i)
		if len(x) != dim {
			return fmt.Errorf("vector %d: want dimension %d, got %d", i, dim, len(x))
		}
		for j, xj := range x {
			rec[j] = strconv.FormatFloat(xj, 'g', -1, 64)
		}
		if labels != nil {
			rec[dim] = labels[i]
		}
		if err := ww.Write(rec); err != nil {
			return err
		}
	}
	ww.Flush()
	return ww.Error()
}
