// Package normalize canonicalizes user-supplied field values before they
// are validated or stored.
package normalize

import "strings"

// Email trims whitespace and lowercases an address. Emails compare
// case-insensitively everywhere, so the stored form is already folded.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims surrounding whitespace. Digits, spaces, and punctuation are
// kept as entered.
func Phone(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a search or filter parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// AuthMethod trims and lowercases an auth method value.
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status trims and lowercases an account status value. Lead pipeline
// statuses are not passed through here; they are matched verbatim.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
