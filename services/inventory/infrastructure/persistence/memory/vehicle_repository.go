// Package memory implements the inventory persistence port with in-process
// maps. It is selected with STORAGE_BACKEND=memory for demos and small
// installs without a database, and doubles as the repository fake in tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// VehicleRepository is a mutex-guarded in-memory implementation of
// repositories.VehicleRepository. All reads and writes work on deep copies so
// callers can never mutate stored state through a shared pointer.
type VehicleRepository struct {
	mu        sync.RWMutex
	vehicles  map[uuid.UUID]*models.Vehicle
	chassis   map[string]uuid.UUID // normalized chassis → vehicle id
	transfers map[uuid.UUID][]*models.TransferRecord
}

// NewVehicleRepository returns an empty in-memory repository.
func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		vehicles:  make(map[uuid.UUID]*models.Vehicle),
		chassis:   make(map[string]uuid.UUID),
		transfers: make(map[uuid.UUID][]*models.TransferRecord),
	}
}

func chassisKey(chassis string) string {
	return strings.ToUpper(strings.TrimSpace(chassis))
}

// Save inserts a new vehicle. The chassis uniqueness check happens under the
// same lock as the insert, mirroring the unique index the postgres adapter
// relies on.
func (r *VehicleRepository) Save(_ context.Context, v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := chassisKey(v.ChassisNumber)
	if _, taken := r.chassis[key]; taken {
		return invdomain.ErrChassisExists
	}
	r.vehicles[v.ID] = v.Clone()
	r.chassis[key] = v.ID
	return nil
}

// GetByID returns a copy of the vehicle or ErrVehicleNotFound.
func (r *VehicleRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[id]
	if !ok {
		return nil, invdomain.ErrVehicleNotFound
	}
	return v.Clone(), nil
}

// List returns a snapshot of every vehicle, newest entry date first.
func (r *VehicleRepository) List(_ context.Context) ([]*models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].ChassisNumber < out[j].ChassisNumber
		}
		return out[i].EntryDate.After(out[j].EntryDate)
	})
	return out, nil
}

// Update overwrites an existing vehicle, keeping the chassis index in step.
func (r *VehicleRepository) Update(_ context.Context, v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.vehicles[v.ID]
	if !ok {
		return invdomain.ErrVehicleNotFound
	}

	oldKey := chassisKey(current.ChassisNumber)
	newKey := chassisKey(v.ChassisNumber)
	if newKey != oldKey {
		if _, taken := r.chassis[newKey]; taken {
			return invdomain.ErrChassisExists
		}
		delete(r.chassis, oldKey)
		r.chassis[newKey] = v.ID
	}
	r.vehicles[v.ID] = v.Clone()
	return nil
}

// Delete removes the vehicle permanently, transfer history included.
func (r *VehicleRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[id]
	if !ok {
		return invdomain.ErrVehicleNotFound
	}
	delete(r.chassis, chassisKey(v.ChassisNumber))
	delete(r.vehicles, id)
	delete(r.transfers, id)
	return nil
}

// AddTransfer appends to the vehicle's movement history.
func (r *VehicleRepository) AddTransfer(_ context.Context, rec *models.TransferRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[rec.VehicleID]; !ok {
		return invdomain.ErrVehicleNotFound
	}
	c := *rec
	r.transfers[rec.VehicleID] = append(r.transfers[rec.VehicleID], &c)
	return nil
}

// ListTransfers returns the movement history, oldest first.
func (r *VehicleRepository) ListTransfers(_ context.Context, vehicleID uuid.UUID) ([]*models.TransferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := r.transfers[vehicleID]
	out := make([]*models.TransferRecord, len(recs))
	for i, rec := range recs {
		c := *rec
		out[i] = &c
	}
	return out, nil
}
