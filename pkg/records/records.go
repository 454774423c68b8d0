// Package records defines the in-memory table model shared by the parser,
// the transform stages, and the output writer. A Record is one row keyed by
// canonical column name; a Table pairs the rows with an ordered column list
// so that serialization preserves the input column order.
package records

import "strings"

// Record is a single row. Values are kept as raw strings; this tool never
// coerces types, it only cleans and filters text fields.
type Record map[string]string

// Clone returns a shallow copy of the record. Useful in tests and anywhere a
// stage needs to preserve the pre-transform row.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Blank reports whether s is empty after trimming ASCII and Unicode spaces.
// All "is this field missing" checks in the pipeline go through this so the
// notion of emptiness stays consistent across stages.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }

// Table is an ordered sequence of records plus the column order they were
// read in. Stages mutate the table in place; rows that are not dropped keep
// their relative order.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
