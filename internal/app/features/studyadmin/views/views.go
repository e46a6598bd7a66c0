// internal/app/features/studyadmin/views/views.go
package studyadmin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "studyadmin",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
