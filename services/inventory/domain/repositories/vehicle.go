package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// VehicleRepository is the persistence port for the Vehicle aggregate.
// The domain layer owns this interface; the postgres and memory adapters
// implement it. List hands out a full snapshot because the filter and stats
// engines are pure functions over the whole collection — at dealership scale
// (hundreds to low thousands of units) that is cheaper than stale caches.
type VehicleRepository interface {
	// Save persists a new vehicle. Returns ErrChassisExists when another
	// active vehicle already holds the chassis number; the check must be
	// atomic with the insert.
	Save(ctx context.Context, v *models.Vehicle) error

	// GetByID returns the vehicle or ErrVehicleNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)

	// List returns a snapshot of every vehicle, newest entry first.
	List(ctx context.Context) ([]*models.Vehicle, error)

	// Update overwrites an existing vehicle. Returns ErrVehicleNotFound for
	// an unknown id and ErrChassisExists when a chassis change collides.
	Update(ctx context.Context, v *models.Vehicle) error

	// Delete removes the vehicle permanently. Quotation or invoice rows that
	// reference the id are left dangling on purpose; readers tolerate them.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddTransfer appends one record to the vehicle's movement history.
	// The history is append-only; there is no update or delete.
	AddTransfer(ctx context.Context, rec *models.TransferRecord) error

	// ListTransfers returns the vehicle's movement history, oldest first.
	ListTransfers(ctx context.Context, vehicleID uuid.UUID) ([]*models.TransferRecord, error)
}
