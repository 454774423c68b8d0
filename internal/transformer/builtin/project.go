package builtin

import "pwclean/pkg/records"

// DropColumns removes a fixed set of columns from the table. Columns that
// are absent are ignored, so the projection is idempotent and safe to run on
// exports that never had the metadata columns to begin with.
type DropColumns struct {
	Fields []string
}

func (d DropColumns) Name() string { return "drop-columns" }

// Apply narrows the table: the named columns disappear from the column list
// and from every row. Row count and row order are untouched.
func (d DropColumns) Apply(t *records.Table) {
	if len(d.Fields) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		drop[f] = struct{}{}
	}

	cols := t.Columns[:0]
	for _, c := range t.Columns {
		if _, gone := drop[c]; !gone {
			cols = append(cols, c)
		}
	}
	t.Columns = cols

	for _, r := range t.Rows {
		for f := range drop {
			delete(r, f)
		}
	}
}
