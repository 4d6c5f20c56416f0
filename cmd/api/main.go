package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/backoffice/docs/swagger"
	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/events"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/pkg/httpx"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/telemetry"
	customerApi "github.com/ghuser/backoffice/services/customer/application/api"
	employeeApi "github.com/ghuser/backoffice/services/employee/application/api"
	orderApi "github.com/ghuser/backoffice/services/order/application/api"
	productApi "github.com/ghuser/backoffice/services/product/application/api"
	sessionApi "github.com/ghuser/backoffice/services/session/application/api"
	supplierApi "github.com/ghuser/backoffice/services/supplier/application/api"
)

// @title					Backoffice BFF API
// @version				1.0
// @description			Session-scoped entity synchronization for the back-office front end.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	subCtx, cancelSubs := context.WithCancel(ctx)
	defer cancelSubs()
	if err := app.RegisterSubscribers(subCtx, eventBus, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	gw, err := gateway.New(cfg)
	if err != nil {
		log.Error("failed to configure backend gateway", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	sessionStore := auth.NewSessionStore(redisClient.Client(), cfg)
	log.Info("session store initialized", "backend", "redis")

	tokens := cache.NewTokenCache(redisClient, cfg.TokenTTL)
	reporter := telemetry.NewSentryReporter(nil)
	workspaces, err := app.NewRegistry(cfg.WorkspaceCacheSize, func(id uuid.UUID) *app.Workspace {
		return app.NewWorkspace(id, app.WorkspaceDeps{
			Gateway:  gw,
			Tokens:   func(id uuid.UUID) auth.SessionTokens { return tokens.For(id) },
			Events:   eventBus,
			Reporter: reporter,
			Log:      log,
		})
	}, log)
	if err != nil {
		log.Error("failed to create workspace registry", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:       cfg,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		Gateway:      gw,
		SessionStore: sessionStore,
		Workspaces:   workspaces,
	}

	serverCfg := httpx.ServerConfig{
		ServiceName:        cfg.ServiceName,
		IsDevelopment:      cfg.Environment == config.EnvDevelopment,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		HandlerTimeout:     cfg.BackendTimeout + 5*time.Second,
	}
	r := httpx.NewRouter(
		serverCfg,
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Backend:  gw,
		Redis:    redisClient,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r, serverCfg.HandlerTimeout)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	sessionApi.SessionRoutes(r, a)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(a.SessionStore, a.Logger))
		productApi.ProductRoutes(r, a)
		supplierApi.SupplierRoutes(r, a)
		employeeApi.EmployeeRoutes(r, a)
		customerApi.CustomerRoutes(r, a)
		orderApi.OrderRoutes(r, a)
	})
}
