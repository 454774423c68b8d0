// Package csvfile writes the cleaned table to a comma-separated file the
// target password manager can import. It is the pipeline's only sink; each
// run owns its output file outright, so a leftover file from a previous run
// is removed before writing.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pwclean/pkg/records"
)

// DefaultOutput is where the import file lands, relative to the working
// directory.
const DefaultOutput = "output/output.csv"

// Writer serializes a table to a single CSV file with a header row.
// encoding/csv quotes fields containing the delimiter, quotes, or newlines,
// so the file round-trips losslessly.
type Writer struct{ path string }

// NewWriter returns a Writer targeting path; an empty path means
// DefaultOutput.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultOutput
	}
	return &Writer{path: path}
}

// Path returns the output path the writer is bound to.
func (w *Writer) Path() string { return w.path }

// Write creates the parent directory if needed, removes any stale output
// from an earlier run, and writes the header plus all rows in the table's
// column order. Any failure is returned wrapped with the path.
func (w *Writer) Write(t *records.Table) error {
	if dir := filepath.Dir(w.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := os.Remove(w.path); err == nil {
		log.Printf("removed stale output %s", w.path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("remove stale output %s: %w", w.path, err)
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", w.path, err)
	}

	cw := csv.NewWriter(f)
	werr := cw.Write(t.Columns)
	row := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		if werr != nil {
			break
		}
		for i, c := range t.Columns {
			row[i] = r[c]
		}
		werr = cw.Write(row)
	}
	if werr == nil {
		cw.Flush()
		werr = cw.Error()
	}
	if werr != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", w.path, werr)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.path, err)
	}
	return nil
}
