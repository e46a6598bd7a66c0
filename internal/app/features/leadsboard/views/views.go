// internal/app/features/leadsboard/views/views.go
package leadsboard

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "leadsboard",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
