// internal/app/features/casestudies/views/views.go
package casestudies

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "casestudies",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
