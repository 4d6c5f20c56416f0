package app

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/events"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/pkg/logger"
)

// Application holds shared infrastructure for every service's routes.
// Pass it to each service's Routes function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order submitted", "order_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient // nil when tokens are kept in memory
	Gateway      *gateway.Client
	SessionStore sessions.Store
	Workspaces   *Registry
}

// WorkspaceFor returns the workspace of the session that made r. The session
// middleware must have run.
func (a *Application) WorkspaceFor(r *http.Request) (*Workspace, error) {
	id, err := auth.WorkspaceIDFromCtx(r.Context())
	if err != nil {
		return nil, err
	}
	return a.Workspaces.Get(id), nil
}
