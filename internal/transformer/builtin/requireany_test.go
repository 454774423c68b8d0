package builtin

import (
	"testing"

	"pwclean/pkg/records"
)

func TestRequireAny(t *testing.T) {
	tb := &records.Table{
		Columns: []string{"username", "notes"},
		Rows: []records.Record{
			{"username": "bob", "notes": ""},
			{"username": "", "notes": "n"},
			{"username": "", "notes": ""},
			{"username": " ", "notes": "\t"}, // blank after trimming
		},
	}
	var rejected []RejectedRow
	RequireAny{
		Fields: []string{"username", "notes"},
		Reject: func(r RejectedRow) { rejected = append(rejected, r) },
	}.Apply(tb)

	if got, want := len(tb.Rows), 2; got != want {
		t.Fatalf("rows=%d want %d: %#v", got, want, tb.Rows)
	}
	if len(rejected) != 2 {
		t.Fatalf("rejected=%d want 2", len(rejected))
	}
}

func TestRequireAnyNoFieldsIsNoop(t *testing.T) {
	tb := &records.Table{
		Columns: []string{"username"},
		Rows:    []records.Record{{"username": ""}},
	}
	RequireAny{}.Apply(tb)
	if len(tb.Rows) != 1 {
		t.Fatalf("rows=%d want 1", len(tb.Rows))
	}
}
