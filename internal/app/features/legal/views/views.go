// internal/app/features/legal/views/views.go
package legal

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "legal",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
