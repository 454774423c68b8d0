package builtin

import (
	"testing"

	"pwclean/pkg/records"
)

func TestDropEmpty(t *testing.T) {
	cols := []string{"name", "url", "notes"}
	tb := &records.Table{
		Columns: cols,
		Rows: []records.Record{
			{"name": "Bank", "url": "", "notes": ""},
			{"name": "", "url": "  ", "notes": "\t"}, // blank after trimming
			{"name": "", "url": "", "notes": "n"},
		},
	}
	var rejected []RejectedRow
	DropEmpty{Reject: func(r RejectedRow) { rejected = append(rejected, r) }}.Apply(tb)

	if got, want := len(tb.Rows), 2; got != want {
		t.Fatalf("rows=%d want %d", got, want)
	}
	if tb.Rows[0]["name"] != "Bank" || tb.Rows[1]["notes"] != "n" {
		t.Fatalf("wrong survivors: %#v", tb.Rows)
	}
	if len(rejected) != 1 || rejected[0].Stage != "drop-empty-rows" {
		t.Fatalf("rejected=%#v", rejected)
	}
}
