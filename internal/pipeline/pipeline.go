// Package pipeline assembles the fixed cleaning sequence that turns a pwSafe
// tab-separated export into an import-ready CSV: header canonicalization,
// metadata projection, column rename, empty-row pruning, title/e-mail/URL
// repairs, row filtering, de-duplication, and serialization.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"pwclean/internal/datasource/file"
	"pwclean/internal/parser/tsv"
	"pwclean/internal/storage/csvfile"
	"pwclean/internal/transformer"
	"pwclean/internal/transformer/builtin"
)

// headerMap canonicalizes the raw pwSafe header names before any stage runs.
var headerMap = map[string]string{
	"Group/Title": "Title",
	"e-mail":      "Email",
}

// metadataColumns are pwSafe bookkeeping fields with no place in the import
// format. Projection tolerates their absence.
var metadataColumns = []string{
	"Created Time",
	"Password Modified Time",
	"Record Modified Time",
	"Password Policy",
	"Password Policy Name",
	"History",
	"Symbols",
}

// renameMap maps the export's column names to the import format's.
var renameMap = map[string]string{
	"Title":    "name",
	"URL":      "url",
	"Username": "username",
	"Password": "password",
	"Email":    "email",
	"Notes":    "notes",
}

// requiredColumns must all be present in the header (post-canonicalization)
// for the export to be processable.
var requiredColumns = []string{"Title", "URL", "Username", "Password", "Email", "Notes"}

// Options configures a run. Zero values mean the documented defaults.
type Options struct {
	// Input is the export path; empty means pwsafe.txt in the working
	// directory.
	Input string
	// Output is the destination CSV; empty means output/output.csv.
	Output string
}

// Stats summarizes a completed run.
type Stats struct {
	// Parsed counts body rows read from the export.
	Parsed int
	// Skipped counts malformed rows the parser stepped over.
	Skipped int
	// Dropped counts rows the cleaning stages filtered out.
	Dropped int
	// Written counts rows in the output file.
	Written int
}

// Run executes the whole conversion. Per-row problems are filtered and
// counted, never returned; any error is file-level (unreadable input,
// malformed header, unwritable output) and fatal to the run.
func Run(ctx context.Context, opts Options) (Stats, error) {
	var stats Stats

	src := file.NewLocal(opts.Input)
	rc, err := src.Open(ctx)
	if err != nil {
		return stats, err
	}
	defer rc.Close()
	log.Printf("reading export %s", src.Path())

	p := tsv.NewParser(tsv.Options{
		TrimSpace: true,
		HeaderMap: headerMap,
		Require:   requiredColumns,
	})
	table, skipped, err := p.Parse(rc)
	if err != nil {
		return stats, fmt.Errorf("parse %s: %w", src.Path(), err)
	}
	stats.Parsed = len(table.Rows)
	stats.Skipped = skipped

	stats.Dropped = transformer.Run(table,
		builtin.DropColumns{Fields: metadataColumns},
		builtin.Rename{Mapping: renameMap},
		builtin.Normalize{},
		builtin.DropEmpty{},
		builtin.TitleLeaf{Field: "name"},
		builtin.MergeEmail{User: "username", Email: "email", Notes: "notes"},
		builtin.HTTPSOnly{Field: "url"},
		builtin.RequireAny{Fields: []string{"username", "notes"}},
		builtin.DropColumns{Fields: []string{"email"}},
		builtin.DeDup{},
	)

	w := csvfile.NewWriter(opts.Output)
	if err := w.Write(table); err != nil {
		return stats, err
	}
	stats.Written = len(table.Rows)
	log.Printf("wrote %d row(s) to %s (%d parsed, %d skipped, %d dropped)",
		stats.Written, w.Path(), stats.Parsed, stats.Skipped, stats.Dropped)
	return stats, nil
}
