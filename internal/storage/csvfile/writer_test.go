package csvfile_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pwclean/internal/storage/csvfile"
	"pwclean/pkg/records"
)

func readBack(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return rows
}

func TestWriteRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "output.csv")
	tb := &records.Table{
		Columns: []string{"name", "url", "notes"},
		Rows: []records.Record{
			{"name": "Bank", "url": "https://bank.com", "notes": "line1\nline2"},
			{"name": `He said "hi"`, "url": "", "notes": "a,b"},
		},
	}
	if err := csvfile.NewWriter(path).Write(tb); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := readBack(t, path)
	want := [][]string{
		{"name", "url", "notes"},
		{"Bank", "https://bank.com", "line1\nline2"},
		{`He said "hi"`, "", "a,b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestWriteReplacesStaleOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.csv")
	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}

	tb := &records.Table{
		Columns: []string{"name"},
		Rows:    []records.Record{{"name": "Bank"}},
	}
	if err := csvfile.NewWriter(path).Write(tb); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := readBack(t, path)
	if len(got) != 2 || got[1][0] != "Bank" {
		t.Fatalf("stale content not replaced: %#v", got)
	}
}

func TestWriteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "output.csv")
	tb := &records.Table{Columns: []string{"name"}}
	if err := csvfile.NewWriter(path).Write(tb); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestWriteUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	tb := &records.Table{Columns: []string{"name"}}
	err := csvfile.NewWriter(filepath.Join(dir, "sub", "output.csv")).Write(tb)
	if err == nil {
		t.Fatalf("expected error for unwritable directory")
	}
}
