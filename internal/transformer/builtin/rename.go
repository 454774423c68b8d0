package builtin

import "pwclean/pkg/records"

// Rename applies a fixed source-name to destination-name mapping to the
// table's columns. Unmapped columns pass through unchanged; values never
// change. Renaming a column onto an existing unmapped name is the caller's
// mistake and the last writer wins.
type Rename struct {
	Mapping map[string]string
}

func (rn Rename) Name() string { return "rename-columns" }

func (rn Rename) Apply(t *records.Table) {
	if len(rn.Mapping) == 0 {
		return
	}
	for i, c := range t.Columns {
		if to, ok := rn.Mapping[c]; ok && to != "" {
			t.Columns[i] = to
		}
	}
	for _, r := range t.Rows {
		for from, to := range rn.Mapping {
			if to == "" || to == from {
				continue
			}
			if v, ok := r[from]; ok {
				r[to] = v
				delete(r, from)
			}
		}
	}
}
