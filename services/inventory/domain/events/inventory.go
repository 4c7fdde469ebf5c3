package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory service.
const (
	TopicVehicleCreated     = "inventory.created"
	TopicVehicleSold        = "inventory.sold"
	TopicVehicleReserved    = "inventory.reserved"
	TopicVehicleTransferred = "inventory.transferred"
)

// VehicleCreatedEvent is published transactionally when a vehicle is added
// to the stock (outbox pattern — same transaction as the insert).
type VehicleCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	VehicleID     uuid.UUID `json:"vehicle_id"`
	ChassisNumber string    `json:"chassis_number"`
	Manufacturer  string    `json:"manufacturer"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// VehicleSoldEvent is published after a successful sale transition.
type VehicleSoldEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	ChassisNumber string    `json:"chassis_number"`
	BuyerName     string    `json:"buyer_name"`
	SalePrice     *float64  `json:"sale_price,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// VehicleReservedEvent is published after a successful reservation.
type VehicleReservedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	ReservedBy string    `json:"reserved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// VehicleTransferredEvent is published after a location transfer.
type VehicleTransferredEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	OccurredAt   time.Time `json:"occurred_at"`
}
