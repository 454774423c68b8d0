// Package builtin contains the reusable transform stages the converter is
// assembled from. Each stage is a small struct satisfying transformer.Stage;
// stages that drop rows report them through an optional Reject sink so the
// caller can account for (or just count) what was filtered.
package builtin

import "pwclean/pkg/records"

// RejectedRow describes a row a stage filtered out.
type RejectedRow struct {
	Raw    records.Record
	Reason string
	Stage  string
}

// reject forwards r to sink when one is set.
func reject(sink func(RejectedRow), r RejectedRow) {
	if sink != nil {
		sink(r)
	}
}
