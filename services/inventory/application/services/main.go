package services

import (
	"github.com/ghuser/dealerstock/pkg/app"
	"github.com/ghuser/dealerstock/pkg/cache"
	"github.com/ghuser/dealerstock/pkg/config"
	"github.com/ghuser/dealerstock/services/inventory/domain/repositories"
	"github.com/ghuser/dealerstock/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/dealerstock/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
}

// New wires the inventory service with the storage adapter selected at
// startup. The memory backend runs without a database, event bus, or cache.
func New(a *app.Application) *Services {
	var repo repositories.VehicleRepository
	if a.StorageBackend == config.StorageMemory {
		repo = memory.NewVehicleRepository()
	} else {
		repo = postgres.NewVehicleRepository(a.Db, a.EventBus)
	}

	var vehicleCache *cache.VehicleCache
	if a.Redis != nil {
		vehicleCache = cache.NewVehicleCache(a.Redis)
	}

	return &Services{
		Inventory: NewInventoryService(repo, vehicleCache, a.EventBus),
	}
}
