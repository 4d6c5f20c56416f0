package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/services/session/application/handlers"
)

// SessionRoutes registers login, logout, notice and details endpoints. Login
// mints a session when the caller has none; everything else requires one.
func SessionRoutes(r chi.Router, a *app.Application) {
	h := handlers.NewSessionHandler(
		a.Gateway,
		func(req *http.Request) (*app.Workspace, error) { return a.WorkspaceFor(req) },
		func(ws *app.Workspace) { a.Workspaces.Forget(ws.ID) },
		a.Logger,
	)

	r.With(auth.StartSession(a.SessionStore, a.Logger)).Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(a.SessionStore, a.Logger))
		r.Post("/auth/logout", h.Logout)
		r.Get("/notice", h.Notice)
		r.Delete("/notice", h.DismissNotice)
		r.Get("/details", h.Details)
		r.Post("/details", h.ShowDetails)
		r.Delete("/details", h.HideDetails)
	})
}
