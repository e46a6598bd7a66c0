// Package htmlsanitize strips unsafe markup from rich-text admin input
// before it is stored. The policy allows the formatting the case-study
// editor produces (paragraphs, emphasis, lists, tables, links) and rejects
// scripts, event handlers, and javascript: URLs.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy *bluemonday.Policy

func init() {
	p := bluemonday.UGCPolicy()

	// Extra text formatting produced by the editor.
	p.AllowElements("u", "s", "sub", "sup", "mark")

	// Tables, including layout attributes.
	p.AllowTables()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("class").Globally()

	policy = p
}

// Sanitize returns s with unsafe HTML removed. Plain text passes through
// unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
