// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"net/http"

	"github.com/gorilla/csrf"
	settingsstore "github.com/orma-ai/ormasite/internal/app/store/settings"
	"github.com/orma-ai/ormasite/internal/app/system/authz"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, db, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity and contact details (from the settings singleton).
	SiteName string
	Settings models.SiteSettings

	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - db: database for loading site settings (can be nil for defaults)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, db *mongo.Database, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		Title:       title,
		BackURL:     backDefault,
		CurrentPath: r.URL.Path,
		CSRFToken:   csrf.Token(r),
	}

	if db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if settings, err := settingsstore.New(db).Get(ctx); err == nil {
			vm.Settings = settings
		}
	}

	return vm
}
