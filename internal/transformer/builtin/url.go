package builtin

import (
	"fmt"
	"net/url"
	"strings"

	"pwclean/pkg/records"
)

// HTTPSOnly normalizes the URL field of every row and drops rows whose URL
// cannot be repaired into a well-formed HTTPS address:
//
//   - A blank URL is considered absent and passes through unchanged.
//   - A value without a "://" scheme marker is treated as a bare host and
//     prefixed with "https://".
//   - An http scheme is rewritten to https; host, port, path, query and
//     fragment are preserved.
//   - Anything else (ftp and friends, a recognized scheme with no host, or a
//     value net/url cannot parse) rejects the row.
type HTTPSOnly struct {
	Field  string
	Reject func(RejectedRow)
}

func (h HTTPSOnly) Name() string { return "https-urls" }

func (h HTTPSOnly) Apply(t *records.Table) {
	out := t.Rows[:0]
	for _, r := range t.Rows {
		fixed, err := normalizeURL(r[h.Field])
		if err != nil {
			reject(h.Reject, RejectedRow{Raw: r, Reason: err.Error(), Stage: h.Name()})
			continue
		}
		r[h.Field] = fixed
		out = append(out, r)
	}
	t.Rows = out
}

// normalizeURL repairs raw into an https URL, or returns an error when the
// value is unusable. A blank value is returned as the empty string.
func normalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	// Scheme detection by the "://" marker: "bank.com:8080" parses as a
	// URL with scheme "bank.com", which is not what anyone pasting a
	// host:port into a password safe meant.
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("unparseable url %q", raw)
	}
	switch u.Scheme {
	case "https":
	case "http":
		u.Scheme = "https"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	return u.String(), nil
}
