package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (gateway.Client, cache.RedisClient and events.EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies checked by the health endpoint. A nil
// checker is reported as "disabled" and does not degrade the status.
type HealthChecks struct {
	Backend  HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Backend  string `json:"backend"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that pings every configured
// HealthChecker and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		check := func(c HealthChecker, field *string) {
			switch {
			case c == nil:
				*field = "disabled"
			case c.Ping(ctx) != nil:
				*field = "unreachable"
				resp.Status = "degraded"
			default:
				*field = "ok"
			}
		}
		check(checks.Backend, &resp.Backend)
		check(checks.Redis, &resp.Redis)
		check(checks.EventBus, &resp.EventBus)

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
