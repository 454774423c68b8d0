package builtin

import (
	"github.com/zeebo/xxh3"

	"pwclean/pkg/records"
)

// DeDup collapses duplicate records, keeping the first occurrence. Password
// safes accumulate the same credential several times over the years (re-saved
// logins, merged imports); the target manager treats each row as a new entry,
// so duplicates are removed here rather than after import.
//
// A record's identity is the xxh3 hash of its key fields joined with a NUL
// separator. When Keys is empty, all columns participate, i.e. only rows that
// are duplicates in full are collapsed.
type DeDup struct {
	Keys   []string
	Reject func(RejectedRow)
}

func (d DeDup) Name() string { return "dedup" }

func (d DeDup) Apply(t *records.Table) {
	keys := d.Keys
	if len(keys) == 0 {
		keys = t.Columns
	}

	seen := make(map[uint64]struct{}, len(t.Rows))
	out := t.Rows[:0]
	for _, r := range t.Rows {
		h := xxh3.New()
		for _, k := range keys {
			_, _ = h.WriteString(r[k])
			_, _ = h.Write([]byte{0})
		}
		sum := h.Sum64()
		if _, dup := seen[sum]; dup {
			reject(d.Reject, RejectedRow{Raw: r, Reason: "duplicate record", Stage: d.Name()})
			continue
		}
		seen[sum] = struct{}{}
		out = append(out, r)
	}
	t.Rows = out
}
