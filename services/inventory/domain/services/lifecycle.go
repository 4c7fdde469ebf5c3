// Package services contains the stateless domain services of the inventory
// bounded context: the lifecycle state machine, the hierarchical filter
// engine, and the stats aggregator. Everything here is a pure function over
// domain types; persistence and transport live in outer layers.
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// Reserve places a hold on the vehicle. Only vehicles that are neither sold
// nor already reserved can be reserved. Mutates v in place on success.
func Reserve(v *models.Vehicle, reservedBy, note string, now time.Time) error {
	if v.Status == models.StatusSold || v.Sold {
		return fmt.Errorf("%w: cannot reserve a sold vehicle", invdomain.ErrInvalidTransition)
	}
	if v.Status == models.StatusReserved {
		return fmt.Errorf("%w: vehicle is already reserved", invdomain.ErrInvalidTransition)
	}
	if strings.TrimSpace(reservedBy) == "" {
		return fmt.Errorf("%w: reservedBy is required", invdomain.ErrInvalidVehicle)
	}

	v.Status = models.StatusReserved
	v.ReservedBy = reservedBy
	v.ReservationNote = note
	t := now.UTC()
	v.ReservationDate = &t
	return nil
}

// CancelReservation releases a hold. Only valid from the reserved state; the
// vehicle returns to available with all reservation fields cleared.
func CancelReservation(v *models.Vehicle) error {
	if v.Status != models.StatusReserved {
		return fmt.Errorf("%w: vehicle is not reserved", invdomain.ErrInvalidTransition)
	}

	v.Status = models.StatusAvailable
	v.ReservedBy = ""
	v.ReservationNote = ""
	v.ReservationDate = nil
	return nil
}

// Sell marks the vehicle sold and records the sale metadata. Selling an
// already-sold vehicle fails — the status and the legacy Sold flag are both
// checked so a drifted record can never be sold twice. A reservation in
// progress is consumed by the sale.
func Sell(v *models.Vehicle, sale models.SaleDetails, now time.Time) error {
	if v.Status == models.StatusSold || v.Sold {
		return fmt.Errorf("%w: vehicle is already sold", invdomain.ErrInvalidTransition)
	}
	if sale.SalePrice != nil && *sale.SalePrice < 0 {
		return fmt.Errorf("%w: sale price must not be negative", invdomain.ErrInvalidVehicle)
	}

	v.Status = models.StatusSold
	v.Sold = true
	t := now.UTC()
	v.SoldDate = &t
	v.BuyerName = sale.BuyerName
	v.SalePrice = sale.SalePrice
	v.PaymentMethod = sale.PaymentMethod

	v.ReservedBy = ""
	v.ReservationNote = ""
	v.ReservationDate = nil
	return nil
}

// Transfer moves the vehicle to a new location and returns the audit record
// to append to its movement history. Allowed in every lifecycle state.
func Transfer(v *models.Vehicle, newLocation, reason, transferredBy string, now time.Time) (*models.TransferRecord, error) {
	if strings.TrimSpace(newLocation) == "" {
		return nil, fmt.Errorf("%w: new location is required", invdomain.ErrInvalidVehicle)
	}

	rec := &models.TransferRecord{
		ID:            uuid.New(),
		VehicleID:     v.ID,
		FromLocation:  v.Location,
		ToLocation:    newLocation,
		Reason:        reason,
		TransferredBy: transferredBy,
		TransferredAt: now.UTC(),
	}
	v.Location = newLocation
	return rec, nil
}
