package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/backoffice/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// requestWithValue builds a request whose session cookie carries value under
// the workspace key; a nil value writes a session without it.
func requestWithValue(t *testing.T, store sessions.Store, value any) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/products/state", nil)
	session, err := store.Get(r, SessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if value != nil {
		session.Values[sessionWorkspaceIDKey] = value
	}
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products/state", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireSession_ValidSession(t *testing.T) {
	store := newTestStore()
	id := uuid.New()

	var captured uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = WorkspaceIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	RequireSession(store, logger.Nop())(next).ServeHTTP(w, requestWithValue(t, store, id.String()))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != id {
		t.Fatalf("expected workspace %v in context, got %v", id, captured)
	}
}

func TestRequireSession_Rejects(t *testing.T) {
	store := newTestStore()
	tests := map[string]*http.Request{
		"missing cookie":       httptest.NewRequest(http.MethodGet, "/api/products/state", nil),
		"missing workspace_id": requestWithValue(t, store, nil),
		"invalid workspace_id": requestWithValue(t, store, "not-a-valid-uuid"),
		"nil workspace_id":     requestWithValue(t, store, uuid.Nil.String()),
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler should not be called")
			})
			w := httptest.NewRecorder()
			RequireSession(store, logger.Nop())(next).ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestStartSession_MintsWorkspace(t *testing.T) {
	store := newTestStore()

	var captured uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = WorkspaceIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	StartSession(store, logger.Nop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

	if captured == uuid.Nil {
		t.Fatal("expected a fresh workspace id")
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// The minted cookie must satisfy RequireSession afterwards.
	req := httptest.NewRequest(http.MethodGet, "/api/products/state", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	var again uuid.UUID
	w2 := httptest.NewRecorder()
	RequireSession(store, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		again, _ = WorkspaceIDFromCtx(r.Context())
	})).ServeHTTP(w2, req)
	if again != captured {
		t.Fatalf("expected workspace %v to persist, got %v", captured, again)
	}
}

func TestStartSession_KeepsExistingWorkspace(t *testing.T) {
	store := newTestStore()
	id := uuid.New()

	var captured uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = WorkspaceIDFromCtx(r.Context())
	})
	StartSession(store, logger.Nop())(next).ServeHTTP(httptest.NewRecorder(), requestWithValue(t, store, id.String()))

	if captured != id {
		t.Fatalf("expected existing workspace %v, got %v", id, captured)
	}
}
