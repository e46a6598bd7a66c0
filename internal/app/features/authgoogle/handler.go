// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/orma-ai/ormasite/internal/app/store/oauthstate"
	userstore "github.com/orma-ai/ormasite/internal/app/store/users"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler handles Google OAuth sign-in for admin accounts.
//
// No self-registration happens here: the Google identity must match an
// existing admin account with auth_method "google".
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	StateStore *oauthstate.Store

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g. "https://orma.ai/auth/google/callback"
}

// NewHandler creates a new Google OAuth handler.
func NewHandler(db *mongo.Database, stateStore *oauthstate.Store, clientID, clientSecret, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		StateStore:   stateStore,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google                                                             |
| Initiates the Google OAuth flow by redirecting to Google's consent screen.   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state, err := generateState()
	if err != nil {
		h.Log.Error("failed to generate OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	returnURL := query.Get(r, "return")

	// Store state with 10-minute expiry
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	expiresAt := time.Now().UTC().Add(10 * time.Minute)
	if err := h.StateStore.Save(ctx, state, returnURL, expiresAt); err != nil {
		h.Log.Error("failed to save OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	url := h.oauth2Config().AuthCodeURL(state, oauth2.AccessTypeOffline)

	h.Log.Debug("initiating Google OAuth flow",
		zap.String("redirect_url", url),
		zap.String("return_url", returnURL))

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google/callback                                                    |
| Exchanges the code for tokens, fetches user info, looks up the admin         |
| account, and creates the session.                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		h.Log.Warn("missing OAuth state parameter")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	returnURL, valid, err := h.StateStore.Validate(ctxTimeout, state)
	if err != nil {
		h.Log.Error("failed to validate OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}
	if !valid {
		h.Log.Warn("invalid or expired OAuth state")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange OAuth code", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	googleUser, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Log.Error("failed to fetch Google user info", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	u, err := userstore.New(h.DB).GetByEmail(ctxTimeout, googleUser.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Info("Google OAuth: no account for email", zap.String("email", googleUser.Email))
		http.Redirect(w, r, "/login?error=no_account", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.Log.Error("failed to look up user", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	if u.AuthMethod != models.AuthMethodGoogle {
		h.Log.Info("Google OAuth: account uses password auth", zap.String("user_id", u.ID.Hex()))
		http.Redirect(w, r, "/login?error=auth_mismatch", http.StatusSeeOther)
		return
	}
	if !u.IsActive() {
		h.Log.Info("Google OAuth: account disabled", zap.String("user_id", u.ID.Hex()))
		http.Redirect(w, r, "/login?error=account_disabled", http.StatusSeeOther)
		return
	}

	if err := auth.SignIn(w, r, auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	if err := userstore.New(h.DB).UpdateLastLogin(ctxTimeout, u.ID); err != nil {
		h.Log.Warn("update last login failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
	}

	h.Log.Info("admin signed in via Google OAuth",
		zap.String("user_id", u.ID.Hex()),
		zap.String("email", u.Email))

	dest := urlutil.SafeReturn(returnURL, "", "/admin/leads")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchGoogleUserInfo retrieves user information from Google's userinfo endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &info, nil
}

// generateState creates a cryptographically secure random state string.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
