package handlers_test

import (
	"net/http"
	"testing"

	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/testutil"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// testEnv bundles the pieces every handler test needs: a fake backend,
// a session store over an in-memory database and the parsed templates.
type testEnv struct {
	backend  *testutil.FakeBackend
	sessions *session.Manager
	renderer *templates.Renderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	return &testEnv{
		backend:  testutil.NewFakeBackend(t),
		sessions: testutil.NewTestSessionManager(t, db),
		renderer: testutil.NewTestRenderer(t),
	}
}

// login attaches a fresh authenticated session to the request.
func (e *testEnv) login(t *testing.T, req *http.Request, token string) {
	t.Helper()
	testutil.Authenticate(t, e.sessions, req, token)
}
