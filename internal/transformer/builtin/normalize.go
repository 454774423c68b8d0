package builtin

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"pwclean/pkg/records"
)

// cleaner strips invisible format runes (zero-width spaces, BOMs and the
// like, category Cf) that password exports pick up from copy-paste, then
// NFC-normalizes so visually identical values compare equal downstream.
var cleaner = transform.Chain(runes.Remove(runes.In(unicode.Cf)), norm.NFC)

// Normalize trims every field and runs it through the cleaner chain. It
// never drops rows.
type Normalize struct{}

func (Normalize) Name() string { return "normalize-fields" }

func (Normalize) Apply(t *records.Table) {
	for _, r := range t.Rows {
		for _, c := range t.Columns {
			v, ok := r[c]
			if !ok || v == "" {
				continue
			}
			if cleaned, _, err := transform.String(cleaner, v); err == nil {
				v = cleaned
			}
			r[c] = strings.TrimSpace(v)
		}
	}
}
