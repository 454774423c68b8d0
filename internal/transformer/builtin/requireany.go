package builtin

import (
	"strings"

	"pwclean/pkg/records"
)

// RequireAny drops rows in which every one of the listed fields is blank. A
// row qualifies as long as any single field carries a value; the import
// format can live with a missing username or missing notes, but a credential
// with neither is unusable.
type RequireAny struct {
	Fields []string
	Reject func(RejectedRow)
}

func (ra RequireAny) Name() string { return "require-any" }

func (ra RequireAny) Apply(t *records.Table) {
	if len(ra.Fields) == 0 {
		return
	}
	out := t.Rows[:0]
	for _, r := range t.Rows {
		ok := false
		for _, f := range ra.Fields {
			if !records.Blank(r[f]) {
				ok = true
				break
			}
		}
		if !ok {
			reject(ra.Reject, RejectedRow{
				Raw:    r,
				Reason: "all of " + strings.Join(ra.Fields, ", ") + " blank",
				Stage:  ra.Name(),
			})
			continue
		}
		out = append(out, r)
	}
	t.Rows = out
}
