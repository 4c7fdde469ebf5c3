package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/dealerstock/pkg/auth"
	pkgcache "github.com/ghuser/dealerstock/pkg/cache"
	"github.com/ghuser/dealerstock/pkg/events"
	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	domainevents "github.com/ghuser/dealerstock/services/inventory/domain/events"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
	"github.com/ghuser/dealerstock/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/dealerstock/services/inventory/domain/services"
)

// internalOwnership is the ownership type hidden from viewer-role reads.
const internalOwnership = "company_internal"

// InventoryService orchestrates the vehicle store, the lifecycle engine, the
// filter engine, and the stats aggregator. The engines are pure functions
// over snapshots; the service fetches the snapshot, applies role visibility,
// and hands it over. Detail reads go through a Redis read-through cache when
// one is wired.
type InventoryService struct {
	repo  repositories.VehicleRepository
	cache *pkgcache.VehicleCache
	bus   *events.EventBus
	now   func() time.Time
}

// NewInventoryService wires the service. cache and bus may be nil (memory
// backend, tests).
func NewInventoryService(repo repositories.VehicleRepository, cache *pkgcache.VehicleCache, bus *events.EventBus) *InventoryService {
	return &InventoryService{repo: repo, cache: cache, bus: bus, now: time.Now}
}

// CreateVehicleInput carries the writable fields of a new vehicle.
type CreateVehicleInput struct {
	ChassisNumber  string
	Manufacturer   string
	Category       string
	TrimLevel      string
	EngineCapacity string
	Year           int
	ExteriorColor  string
	InteriorColor  string
	ImportType     string
	OwnershipType  string
	Location       string
	Status         string // empty defaults to available
	Price          *float64
	Notes          string
}

// Create validates and persists a new vehicle. The chassis uniqueness check
// is atomic with the insert at the repository. The repository publishes the
// created event transactionally (outbox) where a bus is wired.
func (s *InventoryService) Create(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	v := models.NewVehicle(in.ChassisNumber)
	v.Manufacturer = in.Manufacturer
	v.Category = in.Category
	v.TrimLevel = in.TrimLevel
	v.EngineCapacity = in.EngineCapacity
	v.Year = in.Year
	v.ExteriorColor = in.ExteriorColor
	v.InteriorColor = in.InteriorColor
	v.ImportType = in.ImportType
	v.OwnershipType = in.OwnershipType
	v.Location = in.Location
	v.Price = in.Price
	v.Notes = in.Notes
	if in.Status != "" {
		v.Status = models.Status(in.Status)
		v.Sold = v.Status == models.StatusSold
	}

	if err := domainsvcs.ValidateVehicle(v, s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, v); err != nil {
		return nil, fmt.Errorf("save vehicle: %w", err)
	}
	return v, nil
}

// Get retrieves one vehicle using a read-through cache when available.
// The cache stores a trimmed read model, so a cache hit still fetches the
// full record; it only skips the snapshot path for hot dashboards.
func (s *InventoryService) Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	s.warmCache(v)
	return v, nil
}

// List returns the collection visible to the role, newest first, sliced by
// limit/offset. limit <= 0 means no limit.
func (s *InventoryService) List(ctx context.Context, role auth.Role, limit, offset int) ([]*models.Vehicle, int, error) {
	items, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, 0, err
	}
	total := len(items)
	if offset >= len(items) {
		return []*models.Vehicle{}, total, nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

// Search returns vehicles matching the free-text query, case-insensitively,
// over the fixed field set. No matches is an empty slice, not an error.
func (s *InventoryService) Search(ctx context.Context, role auth.Role, query string) ([]*models.Vehicle, error) {
	items, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Vehicle, 0, len(items))
	for _, v := range items {
		if domainsvcs.MatchesSearch(v, query) {
			out = append(out, v)
		}
	}
	return out, nil
}

// FilterResult is the filter engine's combined output for one recomputation.
type FilterResult struct {
	Vehicles []*models.Vehicle
	Facets   []domainsvcs.FacetOptions
}

// Filter runs the hierarchical filter engine over the role-visible snapshot.
// It is total: with no data it returns empty rows and zeroed facet counts.
func (s *InventoryService) Filter(ctx context.Context, role auth.Role, sel domainsvcs.Selection) (*FilterResult, error) {
	items, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	return &FilterResult{
		Vehicles: domainsvcs.Apply(items, sel),
		Facets:   domainsvcs.Options(items, sel),
	}, nil
}

// Stats summarizes the role-visible collection, optionally narrowed by a
// selection for filtered-view statistics.
func (s *InventoryService) Stats(ctx context.Context, role auth.Role, sel *domainsvcs.Selection) (domainsvcs.Summary, error) {
	items, err := s.snapshot(ctx, role)
	if err != nil {
		return domainsvcs.Summary{}, err
	}
	if sel != nil {
		items = domainsvcs.Apply(items, *sel)
	}
	return domainsvcs.Summarize(items), nil
}

// ManufacturerStats buckets the role-visible collection per manufacturer.
func (s *InventoryService) ManufacturerStats(ctx context.Context, role auth.Role) ([]domainsvcs.ManufacturerStats, error) {
	items, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	return domainsvcs.ByManufacturer(items), nil
}

// LocationStats buckets the role-visible collection per location.
func (s *InventoryService) LocationStats(ctx context.Context, role auth.Role) ([]domainsvcs.LocationStats, error) {
	items, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	return domainsvcs.ByLocation(items), nil
}

// UpdateVehicleInput carries a partial edit: nil pointers leave the stored
// value untouched. Status is deliberately absent — status changes go through
// the lifecycle operations, which enforce the transition rules.
type UpdateVehicleInput struct {
	ChassisNumber  *string
	Manufacturer   *string
	Category       *string
	TrimLevel      *string
	EngineCapacity *string
	Year           *int
	ExteriorColor  *string
	InteriorColor  *string
	ImportType     *string
	OwnershipType  *string
	Location       *string
	Price          *float64
	Notes          *string
}

// Update merges the given fields into the stored record and persists the
// result atomically — the whole edit applies or none of it does. A chassis
// number can be set while empty but never changed afterwards.
func (s *InventoryService) Update(ctx context.Context, id uuid.UUID, in UpdateVehicleInput) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}

	if in.ChassisNumber != nil && *in.ChassisNumber != v.ChassisNumber {
		if v.ChassisNumber != "" {
			return nil, fmt.Errorf("%w: chassis number is immutable once set", invdomain.ErrInvalidVehicle)
		}
		v.ChassisNumber = *in.ChassisNumber
	}
	applyString(&v.Manufacturer, in.Manufacturer)
	applyString(&v.Category, in.Category)
	applyString(&v.TrimLevel, in.TrimLevel)
	applyString(&v.EngineCapacity, in.EngineCapacity)
	applyString(&v.ExteriorColor, in.ExteriorColor)
	applyString(&v.InteriorColor, in.InteriorColor)
	applyString(&v.ImportType, in.ImportType)
	applyString(&v.OwnershipType, in.OwnershipType)
	applyString(&v.Location, in.Location)
	applyString(&v.Notes, in.Notes)
	if in.Year != nil {
		v.Year = *in.Year
	}
	if in.Price != nil {
		v.Price = in.Price
	}

	if err := domainsvcs.ValidateVehicle(v, s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	s.invalidateCache(id)
	return v, nil
}

// Delete removes the record permanently. Quotations or invoices that still
// reference the id keep their dangling reference; their readers render
// "no longer available" instead of failing.
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	s.invalidateCache(id)
	return nil
}

// Reserve places a hold on a vehicle and publishes the reserved event.
func (s *InventoryService) Reserve(ctx context.Context, id uuid.UUID, reservedBy, note string) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	if err := domainsvcs.Reserve(v, reservedBy, note, s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("persist reservation: %w", err)
	}
	s.invalidateCache(id)
	s.publish(ctx, domainevents.TopicVehicleReserved, domainevents.VehicleReservedEvent{
		EventID:    uuid.New(),
		Version:    1,
		VehicleID:  v.ID,
		ReservedBy: reservedBy,
		OccurredAt: s.now().UTC(),
	})
	return v, nil
}

// CancelReservation releases a hold and returns the vehicle to available.
func (s *InventoryService) CancelReservation(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	if err := domainsvcs.CancelReservation(v); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("persist cancellation: %w", err)
	}
	s.invalidateCache(id)
	return v, nil
}

// Sell marks a vehicle sold, records the sale metadata, and publishes the
// sold event. Selling twice fails with ErrInvalidTransition.
func (s *InventoryService) Sell(ctx context.Context, id uuid.UUID, sale models.SaleDetails) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	if err := domainsvcs.Sell(v, sale, s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("persist sale: %w", err)
	}
	s.invalidateCache(id)
	s.publish(ctx, domainevents.TopicVehicleSold, domainevents.VehicleSoldEvent{
		EventID:       uuid.New(),
		Version:       1,
		VehicleID:     v.ID,
		ChassisNumber: v.ChassisNumber,
		BuyerName:     sale.BuyerName,
		SalePrice:     sale.SalePrice,
		OccurredAt:    s.now().UTC(),
	})
	return v, nil
}

// Transfer moves a vehicle to a new location, appends the audit record, and
// publishes the transferred event. Allowed in any lifecycle state.
func (s *InventoryService) Transfer(ctx context.Context, id uuid.UUID, newLocation, reason, transferredBy string) (*models.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	from := v.Location
	rec, err := domainsvcs.Transfer(v, newLocation, reason, transferredBy, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("persist transfer: %w", err)
	}
	if err := s.repo.AddTransfer(ctx, rec); err != nil {
		return nil, fmt.Errorf("record transfer: %w", err)
	}
	s.invalidateCache(id)
	s.publish(ctx, domainevents.TopicVehicleTransferred, domainevents.VehicleTransferredEvent{
		EventID:      uuid.New(),
		Version:      1,
		VehicleID:    v.ID,
		FromLocation: from,
		ToLocation:   newLocation,
		OccurredAt:   s.now().UTC(),
	})
	return v, nil
}

// ListTransfers returns a vehicle's movement history, oldest first.
func (s *InventoryService) ListTransfers(ctx context.Context, id uuid.UUID) ([]*models.TransferRecord, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("load vehicle: %w", err)
	}
	recs, err := s.repo.ListTransfers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return recs, nil
}

// snapshot fetches the full collection and strips the rows the role may not
// see. The engines downstream never learn the hidden rows existed.
func (s *InventoryService) snapshot(ctx context.Context, role auth.Role) ([]*models.Vehicle, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	if role.SeesInternalStock() {
		return items, nil
	}
	visible := make([]*models.Vehicle, 0, len(items))
	for _, v := range items {
		if v.OwnershipType != internalOwnership {
			visible = append(visible, v)
		}
	}
	return visible, nil
}

func (s *InventoryService) warmCache(v *models.Vehicle) {
	if s.cache == nil {
		return
	}
	go func() {
		_ = s.cache.Set(context.Background(), &pkgcache.CachedVehicle{
			ID:            v.ID,
			ChassisNumber: v.ChassisNumber,
			Manufacturer:  v.Manufacturer,
			Category:      v.Category,
			Year:          v.Year,
			Status:        v.Status.String(),
			Location:      v.Location,
			Price:         v.Price,
			EntryDate:     v.EntryDate,
			SoldDate:      v.SoldDate,
		})
	}()
}

func (s *InventoryService) invalidateCache(id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), id); err != nil && !errors.Is(err, redis.Nil) {
		// Stale cache self-heals at TTL; nothing to do beyond best effort.
		_ = err
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// publish sends a lifecycle event on the bus. Lifecycle events are
// best-effort notifications (the created event is the one with transactional
// outbox delivery); a nil bus silently drops them.
func (s *InventoryService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	_ = s.bus.Publish(ctx, topic, msg)
}
