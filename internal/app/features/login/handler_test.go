package login_test

import (
	"testing"

	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	"github.com/orma-ai/ormasite/internal/app/features/login"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse battery staple"

func newTestHandler(t *testing.T) (*login.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	if err := auth.InitSessionStore("0123456789abcdef0123456789abcdef", "ormasite-session", "", false, logger); err != nil {
		t.Fatalf("init session store: %v", err)
	}

	return login.NewHandler(db, uierrors.NewErrorLogger(logger), logger, false), testutil.NewFixtures(t, db)
}

func seedAdmin(t *testing.T, fx *testutil.Fixtures, email string) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	fx.CreateUser(ctx, "מנהלת בדיקה", email, string(hash))
}

func TestHandleLoginPost_ValidCredentials(t *testing.T) {
	handler, fx := newTestHandler(t)
	seedAdmin(t, fx, "admin@orma.ai")

	req := testutil.NewFormRequest("/login", map[string]string{
		"email":    "admin@orma.ai",
		"password": testPassword,
	})
	rec := testutil.NewRecorder()

	handler.HandleLoginPost(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/leads")

	if cookies := rec.Result().Cookies(); len(cookies) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestHandleLoginPost_HonorsReturnURL(t *testing.T) {
	handler, fx := newTestHandler(t)
	seedAdmin(t, fx, "admin@orma.ai")

	req := testutil.NewFormRequest("/login", map[string]string{
		"email":    "admin@orma.ai",
		"password": testPassword,
		"return":   "/admin/settings",
	})
	rec := testutil.NewRecorder()

	handler.HandleLoginPost(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/settings")
}

func TestHandleLoginPost_WrongPassword(t *testing.T) {
	handler, fx := newTestHandler(t)
	seedAdmin(t, fx, "admin@orma.ai")

	req := testutil.NewFormRequest("/login", map[string]string{
		"email":    "admin@orma.ai",
		"password": "not it",
	})
	rec := testutil.NewRecorder()

	// The failure path re-renders the login form, which may panic in tests
	// without a booted template engine.
	func() {
		defer func() { _ = recover() }()
		handler.HandleLoginPost(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("wrong password must not redirect, got %q", loc)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Error("wrong password must not set a session cookie")
	}
}

func TestHandleLoginPost_UnknownEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/login", map[string]string{
		"email":    "nobody@orma.ai",
		"password": testPassword,
	})
	rec := testutil.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		handler.HandleLoginPost(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unknown email must not redirect, got %q", loc)
	}
}
