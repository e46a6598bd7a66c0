// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	aboutfeature "github.com/orma-ai/ormasite/internal/app/features/about"
	authgooglefeature "github.com/orma-ai/ormasite/internal/app/features/authgoogle"
	casestudiesfeature "github.com/orma-ai/ormasite/internal/app/features/casestudies"
	contactfeature "github.com/orma-ai/ormasite/internal/app/features/contact"
	errorsfeature "github.com/orma-ai/ormasite/internal/app/features/errors"
	faqadminfeature "github.com/orma-ai/ormasite/internal/app/features/faqadmin"
	healthfeature "github.com/orma-ai/ormasite/internal/app/features/health"
	homefeature "github.com/orma-ai/ormasite/internal/app/features/home"
	leadsboardfeature "github.com/orma-ai/ormasite/internal/app/features/leadsboard"
	legalfeature "github.com/orma-ai/ormasite/internal/app/features/legal"
	loginfeature "github.com/orma-ai/ormasite/internal/app/features/login"
	logoutfeature "github.com/orma-ai/ormasite/internal/app/features/logout"
	siteadminfeature "github.com/orma-ai/ormasite/internal/app/features/siteadmin"
	studyadminfeature "github.com/orma-ai/ormasite/internal/app/features/studyadmin"
	oauthstatestore "github.com/orma-ai/ormasite/internal/app/store/oauthstate"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
	"go.uber.org/zap"

	// Template registration side effects.
	_ "github.com/orma-ai/ormasite/internal/app/features/about/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/casestudies/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/contact/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/faqadmin/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/home/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/leadsboard/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/legal/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/login/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/siteadmin/views"
	_ "github.com/orma-ai/ormasite/internal/app/features/studyadmin/views"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The site initializes the template engine, applies session and CSRF
// middleware, and mounts feature routers for the public pages, the
// authentication flows, and the admin screens.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.OrmaMongoDatabase

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// CSRF protection for every form post. Tokens are surfaced to
	// templates through the base view model.
	r.Use(csrf.Protect(
		[]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.OrmaMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(db, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(db, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	contactHandler := contactfeature.NewHandler(db, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	casestudiesHandler := casestudiesfeature.NewHandler(db, errLog, logger)
	r.Mount("/case-studies", casestudiesfeature.Routes(casestudiesHandler))

	legalHandler := legalfeature.NewHandler(db, logger)
	r.Mount("/privacy", legalfeature.PrivacyRoutes(legalHandler))
	r.Mount("/terms", legalfeature.TermsRoutes(legalHandler))

	// Authentication
	googleHandler := authgooglefeature.NewHandler(db, oauthstatestore.New(db), appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	googleEnabled := googleHandler.IsConfigured()

	loginHandler := loginfeature.NewHandler(db, errLog, logger, googleEnabled)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	if googleEnabled {
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
	}

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Admin screens. Every back-office route requires the admin role;
	// anonymous visitors get the login redirect.
	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.RequireRole("admin"))

		leadsHandler := leadsboardfeature.NewHandler(db, errLog, logger)
		r.Mount("/leads", leadsboardfeature.Routes(leadsHandler))

		studyHandler := studyadminfeature.NewHandler(db, errLog, logger)
		r.Mount("/case-studies", studyadminfeature.Routes(studyHandler))

		faqHandler := faqadminfeature.NewHandler(db, errLog, logger)
		r.Mount("/faqs", faqadminfeature.Routes(faqHandler))

		siteHandler := siteadminfeature.NewHandler(db, errLog, logger)
		r.Mount("/settings", siteadminfeature.Routes(siteHandler))
	})

	return r, nil
}
