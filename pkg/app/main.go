package app

import (
	"github.com/ghuser/dealerstock/pkg/cache"
	"github.com/ghuser/dealerstock/pkg/database"
	"github.com/ghuser/dealerstock/pkg/events"
	"github.com/ghuser/dealerstock/pkg/logger"
	"github.com/gorilla/sessions"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration during server initialization.
//
// StorageBackend selects the persistence adapter (config.StoragePostgres or
// config.StorageMemory). With the memory backend, Db and EventBus are nil and
// every component that uses them must tolerate that.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "reserving vehicle", "vehicle_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	StorageBackend string
	Db             *database.Database // nil with the memory backend
	Logger         logger.Logger
	EventBus       *events.EventBus   // nil with the memory backend
	Redis          *cache.RedisClient // nil when Redis is not configured
	SessionStore   sessions.Store
}
