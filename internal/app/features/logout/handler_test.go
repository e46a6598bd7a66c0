package logout_test

import (
	"net/http"
	"testing"

	"github.com/orma-ai/ormasite/internal/app/features/logout"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.uber.org/zap"
)

func TestServeLogout_RedirectsHome(t *testing.T) {
	handler := logout.NewHandler(zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/logout")
	rec := testutil.NewRecorder()

	handler.ServeLogout(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/")
}

func TestServeLogout_WorksWithoutSession(t *testing.T) {
	handler := logout.NewHandler(zap.NewNop())

	// No session cookie on the request and no initialized session store;
	// logout must still land on the home page.
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/logout", testutil.AdminUser())
	rec := testutil.NewRecorder()

	handler.ServeLogout(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/")
}
