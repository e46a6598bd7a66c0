// internal/app/features/siteadmin/views/views.go
package siteadmin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "siteadmin",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
