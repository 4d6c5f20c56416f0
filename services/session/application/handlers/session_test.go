package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

type fakeAuth struct {
	resp  gateway.Response[string]
	err   error
	calls int
}

func (f *fakeAuth) Login(context.Context, gateway.Credentials) (gateway.Response[string], error) {
	f.calls++
	return f.resp, f.err
}

type harness struct {
	router    *chi.Mux
	ws        *app.Workspace
	auth      *fakeAuth
	forgotten bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gw, err := gateway.NewWithHTTPClient("http://backend.test", http.DefaultClient)
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	h := &harness{
		auth: &fakeAuth{},
		ws: app.NewWorkspace(uuid.New(), app.WorkspaceDeps{
			Gateway: gw,
			Tokens:  func(uuid.UUID) auth.SessionTokens { return auth.NewMemoryTokens("") },
			Log:     logger.Nop(),
		}),
	}
	sh := NewSessionHandler(h.auth,
		func(*http.Request) (*app.Workspace, error) { return h.ws, nil },
		func(*app.Workspace) { h.forgotten = true },
		logger.Nop(),
	)
	r := chi.NewRouter()
	r.Post("/auth/login", sh.Login)
	r.Post("/auth/logout", sh.Logout)
	r.Get("/notice", sh.Notice)
	r.Delete("/notice", sh.DismissNotice)
	r.Get("/details", sh.Details)
	r.Post("/details", sh.ShowDetails)
	r.Delete("/details", sh.HideDetails)
	h.router = r
	return h
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.router.ServeHTTP(rr, req)
	return rr
}

const creds = `{"username":"ada","password":"secret"}`

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		resp       gateway.Response[string]
		err        error
		wantStatus int
		wantToken  bool
		wantNotice string
	}{
		{"success", gateway.Response[string]{Data: "tok", Status: 200}, nil, http.StatusOK, true, ""},
		{"rejected", gateway.Response[string]{Status: 401, StatusText: "Unauthorized"}, nil, http.StatusUnauthorized, false, MessageBadCredentials},
		{"bad request", gateway.Response[string]{Status: 400}, nil, http.StatusUnprocessableEntity, false, MessageBadCredentials},
		{"server error", gateway.Response[string]{Status: 503}, nil, http.StatusBadGateway, false, errhttp.MessageGeneric},
		{"unreachable", gateway.Response[string]{}, errors.New("dial tcp: refused"), http.StatusBadGateway, false, errhttp.MessageGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.auth.resp, h.auth.err = tt.resp, tt.err

			rr := h.do(http.MethodPost, "/auth/login", creds)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d (%s)", rr.Code, tt.wantStatus, rr.Body)
			}

			var resp LoginResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.LoggedIn != tt.wantToken {
				t.Errorf("loggedIn: got %v", resp.LoggedIn)
			}

			token, ok := h.ws.Tokens.Token(context.Background())
			if ok != tt.wantToken || (ok && token != "tok") {
				t.Errorf("token: got %q %v", token, ok)
			}

			n, present := h.ws.Banner.Current()
			if tt.wantNotice == "" {
				if present {
					t.Errorf("unexpected notice %+v", n)
				}
				return
			}
			if !present || n.Message != tt.wantNotice || n.Domain != Domain {
				t.Errorf("notice: got %+v present=%v", n, present)
			}
		})
	}
}

func TestLogin_MissingFieldsNeverReachBackend(t *testing.T) {
	h := newHarness(t)

	rr := h.do(http.MethodPost, "/auth/login", `{"username":"ada"}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"password"`) {
		t.Errorf("expected password field error: %s", rr.Body)
	}
	if h.auth.calls != 0 {
		t.Errorf("backend called %d times", h.auth.calls)
	}
}

func TestLogin_ClearsStaleNoticeAndDetails(t *testing.T) {
	h := newHarness(t)
	h.auth.resp = gateway.Response[string]{Status: 401}
	h.do(http.MethodPost, "/auth/login", creds)
	h.ws.Details.Show(viewmodel.KindLogin, "")

	h.auth.resp = gateway.Response[string]{Data: "tok", Status: 200}
	h.do(http.MethodPost, "/auth/login", creds)

	if _, present := h.ws.Banner.Current(); present {
		t.Error("notice should be cleared after login")
	}
	if h.ws.Details.Current().Open {
		t.Error("details should be closed after login")
	}
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	_ = h.ws.Tokens.Login(context.Background(), "tok")

	rr := h.do(http.MethodPost, "/auth/logout", "")

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if _, ok := h.ws.Tokens.Token(context.Background()); ok {
		t.Error("token should be dropped")
	}
	if !h.forgotten {
		t.Error("workspace should be forgotten")
	}
}

func TestNotice(t *testing.T) {
	h := newHarness(t)

	var resp NoticeResponse
	_ = json.NewDecoder(h.do(http.MethodGet, "/notice", "").Body).Decode(&resp)
	if resp.Present {
		t.Fatalf("fresh workspace has a notice: %+v", resp)
	}

	// A fetch without a token surfaces the re-auth notice.
	h.ws.Products.FetchAll(context.Background())

	resp = NoticeResponse{}
	_ = json.NewDecoder(h.do(http.MethodGet, "/notice", "").Body).Decode(&resp)
	if !resp.Present || !resp.Notice.Reauth || resp.Notice.Domain != "products" {
		t.Fatalf("expected re-auth notice, got %+v", resp)
	}

	if rr := h.do(http.MethodDelete, "/notice", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("dismiss: %d", rr.Code)
	}
	if _, present := h.ws.Banner.Current(); present {
		t.Error("notice should be dismissed")
	}
}

func TestDetails(t *testing.T) {
	h := newHarness(t)

	if rr := h.do(http.MethodPost, "/details", `{"kind":"robot"}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown kind: expected 422, got %d", rr.Code)
	}

	rr := h.do(http.MethodPost, "/details", `{"kind":"supplier","id":7}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("show: %d %s", rr.Code, rr.Body)
	}
	var p viewmodel.Panel
	_ = json.NewDecoder(h.do(http.MethodGet, "/details", "").Body).Decode(&p)
	if !p.Open || p.Kind != viewmodel.KindSupplier || p.ID != "7" {
		t.Fatalf("panel: %+v", p)
	}

	h.do(http.MethodDelete, "/details", "")
	if h.ws.Details.Current().Open {
		t.Error("details should be hidden")
	}
}
