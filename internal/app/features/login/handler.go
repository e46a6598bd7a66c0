// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	userstore "github.com/orma-ai/ormasite/internal/app/store/users"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// defaultAfterLogin is where admins land when no return URL was carried.
const defaultAfterLogin = "/admin/leads"

type Handler struct {
	DB            *mongo.Database
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger, googleEnabled bool) *Handler {
	return &Handler{
		DB:            db,
		ErrLog:        errLog,
		Log:           logger,
		GoogleEnabled: googleEnabled,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// oauthErrorMessages maps the error codes the Google callback redirects
// with to user-facing text. Unknown codes get a generic message.
var oauthErrorMessages = map[string]string{
	"google_denied":    "ההתחברות עם Google בוטלה.",
	"no_account":       "לא נמצא חשבון מנהל עבור כתובת האימייל הזו.",
	"auth_mismatch":    "חשבון זה אינו מוגדר להתחברות עם Google.",
	"account_disabled": "החשבון אינו פעיל.",
}

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")

	var errMsg string
	if code := query.Get(r, "error"); code != "" {
		errMsg = oauthErrorMessages[code]
		if errMsg == "" {
			errMsg = "ההתחברות נכשלה. נסו שוב."
		}
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, h.DB, "התחברות", "/"),
		Error:         errMsg,
		ReturnURL:     ret,
		GoogleEnabled: h.GoogleEnabled,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "הטופס שנשלח אינו תקין.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "נא למלא אימייל וסיסמה.", email, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		h.Log.Info("login failed: unknown email", zap.String("email", email))
		h.renderFormWithError(w, r, "אימייל או סיסמה שגויים.", email, returnURL)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "find user by email failed", err, "אירעה שגיאת שרת.", "/login")
		return
	}

	if !u.IsActive() {
		h.Log.Warn("login attempt on disabled account", zap.String("user_id", u.ID.Hex()))
		h.renderFormWithError(w, r, "החשבון אינו פעיל.", email, returnURL)
		return
	}
	if u.PasswordHash == "" {
		h.renderFormWithError(w, r, "לחשבון זה אין סיסמה. התחברו עם Google.", email, returnURL)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		h.Log.Info("login failed: wrong password", zap.String("user_id", u.ID.Hex()))
		h.renderFormWithError(w, r, "אימייל או סיסמה שגויים.", email, returnURL)
		return
	}

	if err := auth.SignIn(w, r, auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		h.ErrLog.LogServerError(w, r, "create session failed", err, "אירעה שגיאת שרת.", "/login")
		return
	}

	if err := userstore.New(h.DB).UpdateLastLogin(ctx, u.ID); err != nil {
		h.Log.Warn("update last login failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
	}

	h.Log.Info("admin signed in",
		zap.String("user_id", u.ID.Hex()),
		zap.String("auth_method", "password"),
	)

	dest := urlutil.SafeReturn(returnURL, "", defaultAfterLogin)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, returnURL string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, h.DB, "התחברות", "/"),
		Error:         msg,
		Email:         email,
		ReturnURL:     returnURL,
		GoogleEnabled: h.GoogleEnabled,
	})
}
