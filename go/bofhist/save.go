package bofhist

import (
	"io"
	"os"
	"path"

	"github.com/jvlmdr/bof/go/vecset"
	"github.com/jvlmdr/go-file/fileutil"
)

// Counts presents the histograms as vectors.
func Counts(records []Record) vecset.Slice {
	x := make([][]int, len(records))
	for i, r := range records {
		x[i] = r.Counts
	}
	return vecset.Ints(x)
}

// Labels returns the image of every record.
func Labels(records []Record) []string {
	s := make([]string, len(records))
	for i, r := range records {
		s[i] = r.Image
	}
	return s
}

// EncodeCSV writes a header followed by one line per record.
func EncodeCSV(w io.Writer, records []Record, n int) error {
	labels := Labels(records)
	return vecset.EncodeCSV(w, Header(n), Counts(records), labels)
}

// SaveExt saves the records in a format chosen by the file extension.
// CSV files have the columns of Header, other extensions are handled by fileutil.
func SaveExt(fname string, records []Record, n int) error {
	switch path.Ext(fname) {
	case ".csv":
		return saveCSV(fname, records, n)
	default:
		return fileutil.SaveExt(fname, records)
	}
}

func saveCSV(fname string, records []Record, n int) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeCSV(file, records, n)
}
