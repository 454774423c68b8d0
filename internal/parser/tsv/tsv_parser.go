// Package tsv parses tab-separated password-safe exports into an in-memory
// table. It reuses encoding/csv with a tab delimiter in a lenient mode
// (real exports carry unescaped quotes inside notes), canonicalizes the
// export's header names, and soft-skips rows whose width does not match the
// header instead of aborting the whole run.
package tsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"pwclean/pkg/records"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// Options configures the parser. All fields are optional; zero values get
// sensible defaults.
type Options struct {
	// Comma is the field delimiter. When zero, '\t' is used.
	Comma rune

	// TrimSpace trims leading/trailing whitespace from each field value.
	TrimSpace bool

	// HeaderMap maps source header names to canonical column names, e.g.
	// the pwSafe "Group/Title" to "Title". Headers not in the map pass
	// through unchanged.
	HeaderMap map[string]string

	// Require lists canonical column names that must appear in the header.
	// A header missing any of them is a malformed export and Parse fails.
	Require []string
}

// Parser parses a tab-separated export according to Options. It is safe to
// reuse across inputs but is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse consumes the export from r and returns the parsed table along with
// the number of body rows skipped for width mismatches or per-row read
// errors. The header row is mandatory; a missing or incomplete header is a
// hard error, per-row trouble is not.
func (p *Parser) Parse(r io.Reader) (*records.Table, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	// Exports in the wild contain stray quotes inside notes fields; stay
	// lenient and enforce width ourselves after each read.
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	h, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read export header: %w", err)
	}
	headers := p.canonicalHeaders(h)

	for _, want := range p.opt.Require {
		found := false
		for _, have := range headers {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return nil, 0, fmt.Errorf("export header missing column %q", want)
		}
	}

	t := &records.Table{Columns: headers}
	var skipped int

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("skipping row %d: %v", line, err)
			skipped++
			continue
		}
		if len(row) != len(headers) {
			log.Printf("skipping row %d: expected %d fields, got %d", line, len(headers), len(row))
			skipped++
			continue
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[headers[i]] = val
		}
		t.Rows = append(t.Rows, rec)
	}

	return t, skipped, nil
}

// canonicalHeaders strips a UTF-8 BOM from the first cell, trims each name,
// and applies HeaderMap.
func (p *Parser) canonicalHeaders(h []string) []string {
	res := make([]string, len(h))
	for i, col := range h {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		col = strings.TrimSpace(col)
		if mapped, ok := p.opt.HeaderMap[col]; ok && mapped != "" {
			col = mapped
		}
		res[i] = col
	}
	return res
}
