package builtin

import "pwclean/pkg/records"

// MergeEmail reconciles the export's separate username and e-mail fields
// into the single username field the import format has:
//
//  1. A blank username is filled from the e-mail address.
//  2. When the username was already set and the e-mail differs from it, the
//     e-mail is appended to the notes field (newline-joined when notes is
//     non-blank) so the address is not lost.
//
// Rows where both are blank are left alone; a later stage decides whether
// such a row is usable at all.
type MergeEmail struct {
	User  string
	Email string
	Notes string
}

func (m MergeEmail) Name() string { return "merge-email" }

func (m MergeEmail) Apply(t *records.Table) {
	for _, r := range t.Rows {
		email := r[m.Email]
		if records.Blank(email) {
			continue
		}
		if records.Blank(r[m.User]) {
			r[m.User] = email
			continue
		}
		if r[m.User] == email {
			// Already captured as the username; appending would only
			// duplicate it.
			continue
		}
		if records.Blank(r[m.Notes]) {
			r[m.Notes] = email
		} else {
			r[m.Notes] = r[m.Notes] + "\n" + email
		}
	}
}
