// Package transformer defines the stage contract for the cleaning pipeline
// and a small runner that applies stages in order. Stages mutate the table in
// place; any stage may drop rows, none may add them, and rows that survive a
// stage keep their relative order.
package transformer

import (
	"log"

	"pwclean/pkg/records"
)

// Stage is one step of the cleaning pipeline.
type Stage interface {
	// Name identifies the stage in logs and reject records.
	Name() string
	// Apply transforms the table in place.
	Apply(t *records.Table)
}

// Run applies the stages in order and returns the total number of rows
// dropped across all of them. Per-stage drops are logged; individual rows are
// never an error.
func Run(t *records.Table, stages ...Stage) int {
	dropped := 0
	for _, s := range stages {
		before := len(t.Rows)
		s.Apply(t)
		if d := before - len(t.Rows); d > 0 {
			log.Printf("%s: dropped %d row(s)", s.Name(), d)
			dropped += d
		}
	}
	return dropped
}
