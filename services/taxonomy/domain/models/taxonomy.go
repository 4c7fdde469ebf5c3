package models

import (
	"time"

	"github.com/google/uuid"
)

// Manufacturer is the root level of the reference taxonomy used to populate
// dropdowns. Vehicles store manufacturer names as free text on purpose; the
// taxonomy is advisory, not a foreign-key target.
type Manufacturer struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Category is a vehicle model line owned by one manufacturer.
type Category struct {
	ID             uuid.UUID
	ManufacturerID uuid.UUID
	Name           string
	CreatedAt      time.Time
}

// TrimLevel is one trim of a category.
type TrimLevel struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	CreatedAt  time.Time
}

// Tree is the fully joined taxonomy, shaped for a single dropdown-population
// round trip.
type Tree struct {
	Manufacturers []TreeManufacturer `json:"manufacturers"`
}

// TreeManufacturer is one manufacturer with its nested categories.
type TreeManufacturer struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Categories []TreeCategory `json:"categories"`
}

// TreeCategory is one category with its nested trim levels.
type TreeCategory struct {
	ID    uuid.UUID  `json:"id"`
	Name  string     `json:"name"`
	Trims []TreeTrim `json:"trims"`
}

// TreeTrim is one trim level leaf.
type TreeTrim struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
