package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vehicle is the core aggregate of the inventory bounded context: one
// physical unit on the lot. Manufacturer, category and trim are stored as
// free text — the taxonomy service holds the normalized reference tree for
// dropdowns, but the two are deliberately not forced to stay in sync so bulk
// imports can carry values that predate taxonomy entries.
type Vehicle struct {
	ID            uuid.UUID
	ChassisNumber string // globally unique business identifier

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

	Status Status
	// Sold is a legacy marker flag carried alongside Status. The UI contract
	// predates the status enum; both must be read and written together.
	Sold bool

	Price *float64
	Notes string

	EntryDate time.Time

	// Sale metadata, populated by the lifecycle sell operation.
	SoldDate      *time.Time
	BuyerName     string
	SalePrice     *float64
	PaymentMethod string

	// Reservation metadata, populated by reserve and cleared by cancel.
	ReservedBy      string
	ReservationNote string
	ReservationDate *time.Time
}

// NewVehicle constructs a Vehicle aggregate with a generated ID, entry date
// stamped to now, and status defaulting to available when unset.
func NewVehicle(chassisNumber string) *Vehicle {
	return &Vehicle{
		ID:            uuid.New(),
		ChassisNumber: strings.ToUpper(strings.TrimSpace(chassisNumber)),
		Status:        StatusAvailable,
		EntryDate:     time.Now().UTC(),
	}
}

// Clone returns a deep copy of the vehicle. The filter and stats engines work
// on snapshots, so storage adapters hand out copies rather than shared state.
func (v *Vehicle) Clone() *Vehicle {
	c := *v
	c.Price = clonePtr(v.Price)
	c.SoldDate = clonePtr(v.SoldDate)
	c.SalePrice = clonePtr(v.SalePrice)
	c.ReservationDate = clonePtr(v.ReservationDate)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// SaleDetails carries the buyer-facing fields recorded when a vehicle is sold.
type SaleDetails struct {
	BuyerName     string
	SalePrice     *float64
	PaymentMethod string
}

// TransferRecord is one entry in a vehicle's append-only movement history.
// Records are never mutated or deleted once written.
type TransferRecord struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	FromLocation  string
	ToLocation    string
	Reason        string
	TransferredBy string
	TransferredAt time.Time
}
