// internal/app/features/faqadmin/views/views.go
package faqadmin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "faqadmin",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
