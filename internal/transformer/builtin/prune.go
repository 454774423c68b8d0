package builtin

import "pwclean/pkg/records"

// DropEmpty removes rows whose every field is blank after whitespace
// trimming. Rows with at least one non-blank field survive regardless of
// which field it is.
type DropEmpty struct {
	Reject func(RejectedRow)
}

func (d DropEmpty) Name() string { return "drop-empty-rows" }

func (d DropEmpty) Apply(t *records.Table) {
	out := t.Rows[:0]
	for _, r := range t.Rows {
		empty := true
		for _, c := range t.Columns {
			if !records.Blank(r[c]) {
				empty = false
				break
			}
		}
		if empty {
			reject(d.Reject, RejectedRow{Raw: r, Reason: "all fields blank", Stage: d.Name()})
			continue
		}
		out = append(out, r)
	}
	t.Rows = out
}
