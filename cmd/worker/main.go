package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/dealerstock/pkg/app"
	"github.com/ghuser/dealerstock/pkg/cache"
	"github.com/ghuser/dealerstock/pkg/config"
	"github.com/ghuser/dealerstock/pkg/database"
	"github.com/ghuser/dealerstock/pkg/events"
	"github.com/ghuser/dealerstock/pkg/logger"
	"github.com/ghuser/dealerstock/pkg/telemetry"
	inventoryEvents "github.com/ghuser/dealerstock/services/inventory/domain/events"
)

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

	// The worker exists to drain the postgres-backed event bus; with the
	// memory backend there is nothing to consume.
	if cfg.StorageBackend != config.StoragePostgres {
		slog.Error("worker requires STORAGE_BACKEND=postgres")
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		StorageBackend: cfg.StorageBackend,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		inventoryEvents.TopicVehicleCreated:     handleVehicleCreated(a),
		inventoryEvents.TopicVehicleSold:        handleVehicleSold(a),
		inventoryEvents.TopicVehicleTransferred: handleVehicleTransferred(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleVehicleCreated returns a handler for inventory.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so the detail view of a freshly entered
// vehicle is served from cache.
func handleVehicleCreated(a *app.Application) func(context.Context, *message.Message) error {
	vehicleCache := cache.NewVehicleCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.VehicleCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := vehicleCache.Set(ctx, &cache.CachedVehicle{
			ID:            evt.VehicleID,
			ChassisNumber: evt.ChassisNumber,
			Manufacturer:  evt.Manufacturer,
			Category:      evt.Category,
			Status:        evt.Status,
			EntryDate:     evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for inventory.created",
				"vehicle_id", evt.VehicleID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"vehicle_id", evt.VehicleID, "chassis_number", evt.ChassisNumber)
		}

		return nil
	}
}

// handleVehicleSold returns a handler for inventory.sold events. It drops the
// now-stale cache entry and writes a structured audit line for the sales
// ledger export.
func handleVehicleSold(a *app.Application) func(context.Context, *message.Message) error {
	vehicleCache := cache.NewVehicleCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.VehicleSoldEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := vehicleCache.Delete(ctx, evt.VehicleID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for inventory.sold",
				"vehicle_id", evt.VehicleID, "error", err)
		}

		a.Logger.InfoContext(ctx, "vehicle sold",
			"vehicle_id", evt.VehicleID,
			"chassis_number", evt.ChassisNumber,
			"buyer_name", evt.BuyerName,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}

// handleVehicleTransferred returns a handler for inventory.transferred events.
// Location changes invalidate the cached read model.
func handleVehicleTransferred(a *app.Application) func(context.Context, *message.Message) error {
	vehicleCache := cache.NewVehicleCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.VehicleTransferredEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := vehicleCache.Delete(ctx, evt.VehicleID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for inventory.transferred",
				"vehicle_id", evt.VehicleID, "error", err)
		}

		a.Logger.InfoContext(ctx, "vehicle transferred",
			"vehicle_id", evt.VehicleID,
			"from", evt.FromLocation,
			"to", evt.ToLocation,
		)
		return nil
	}
}
