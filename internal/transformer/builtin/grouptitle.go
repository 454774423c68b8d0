package builtin

import (
	"strings"

	"pwclean/pkg/records"
)

// TitleLeaf rewrites a pwSafe "group.title" path to its leaf segment: the
// export encodes folder nesting as dot-separated prefixes on the title, which
// are meaningless to the import format. Titles without a dot are unchanged.
type TitleLeaf struct {
	Field string
}

func (tl TitleLeaf) Name() string { return "title-leaf" }

func (tl TitleLeaf) Apply(t *records.Table) {
	for _, r := range t.Rows {
		v, ok := r[tl.Field]
		if !ok {
			continue
		}
		if i := strings.LastIndex(v, "."); i >= 0 {
			v = v[i+1:]
		}
		r[tl.Field] = strings.TrimSpace(v)
	}
}
