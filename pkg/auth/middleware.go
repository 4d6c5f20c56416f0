package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/backoffice/pkg/httpx"
	"github.com/ghuser/backoffice/pkg/logger"
)

const (
	// SessionName is the cookie carrying the encrypted session ID.
	SessionName           = "backoffice_session"
	sessionWorkspaceIDKey = "workspace_id"
)

// RequireSession is a chi middleware that resolves the caller's workspace from
// the session cookie. Returns 401 if the session is missing or carries no
// valid workspace_id.
//
// After this middleware, handlers can safely call auth.WorkspaceIDFromCtx(r.Context()).
func RequireSession(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			id, ok := workspaceID(session)
			if !ok {
				log.WarnContext(r.Context(), "session missing workspace_id")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			logger.AddFields(r.Context(), "workspace_id", id)
			next.ServeHTTP(w, r.WithContext(WithWorkspaceID(r.Context(), id)))
		})
	}
}

// StartSession behaves like RequireSession but mints a workspace for callers
// that have none yet. Mount it on the login route only.
func StartSession(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				// Tampered or stale cookie: start over with a fresh session.
				log.WarnContext(r.Context(), "discarding unreadable session", "error", err)
				session, _ = store.New(r, SessionName)
			}

			id, ok := workspaceID(session)
			if !ok {
				id = uuid.New()
				session.Values[sessionWorkspaceIDKey] = id.String()
				if err := session.Save(r, w); err != nil {
					log.ErrorContext(r.Context(), "failed to save session", "error", err)
					httpx.JSONError(w, http.StatusInternalServerError, "could not start session")
					return
				}
				log.InfoContext(r.Context(), "session started", "workspace_id", id)
			}

			logger.AddFields(r.Context(), "workspace_id", id)
			next.ServeHTTP(w, r.WithContext(WithWorkspaceID(r.Context(), id)))
		})
	}
}

func workspaceID(s *sessions.Session) (uuid.UUID, bool) {
	raw, ok := s.Values[sessionWorkspaceIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
