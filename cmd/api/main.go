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
	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/dealerstock/docs/swagger"
	"github.com/ghuser/dealerstock/pkg/app"
	"github.com/ghuser/dealerstock/pkg/auth"
	"github.com/ghuser/dealerstock/pkg/cache"
	"github.com/ghuser/dealerstock/pkg/config"
	"github.com/ghuser/dealerstock/pkg/database"
	"github.com/ghuser/dealerstock/pkg/events"
	"github.com/ghuser/dealerstock/pkg/httpx"
	"github.com/ghuser/dealerstock/pkg/logger"
	"github.com/ghuser/dealerstock/pkg/telemetry"
	inventoryApi "github.com/ghuser/dealerstock/services/inventory/application/api"
	taxonomyApi "github.com/ghuser/dealerstock/services/taxonomy/application/api"
)

// @title					DealerStock API
// @version				1.0
// @description			Vehicle inventory management for dealerships: stock tracking, lifecycle, faceted filtering, and statistics.
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

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// Persistence: the memory backend runs the whole API without postgres,
	// the event bus, or redis. Useful for demos and local development.
	var (
		pool        *database.Database
		eventBus    *events.EventBus
		redisClient *cache.RedisClient
	)
	if cfg.StorageBackend == config.StoragePostgres {
		pool, err = database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close()
		log.Info("database pool connected")

		eventBus, err = events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	} else {
		log.Info("memory storage backend selected; postgres, redis, and event bus disabled")
	}

	var sessionStore sessions.Store
	if redisClient != nil {
		sessionStore = auth.NewSessionStore(
			redisClient.Client(),
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			cfg.Environment == config.EnvProduction,
		)
		log.Info("session store initialized", "backend", "redis")
	} else {
		sessionStore = sessions.NewCookieStore(
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
		)
		log.Info("session store initialized", "backend", "cookie")
	}

	appConfig := &app.Application{
		StorageBackend: cfg.StorageBackend,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		SessionStore:   sessionStore,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	// Assign checkers only when the component is wired; a nil entry renders
	// as "disabled" instead of failing the probe.
	health := httpx.HealthChecks{}
	if pool != nil {
		health.Database = pool
	}
	if redisClient != nil {
		health.Redis = redisClient
	}
	if eventBus != nil {
		health.EventBus = eventBus
	}
	r.Get("/health", httpx.HealthHandler(health))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		auth.SessionRoutes(r, sessionStore, log)
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(":8080", r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageBackend)
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
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	inventoryApi.InventoryRoutes(r, a)
	taxonomyApi.TaxonomyRoutes(r, a)
}
