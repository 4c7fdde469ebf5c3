package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

const (
	// minVehicleYear is the oldest model year accepted. The lot occasionally
	// takes classics, so the floor is generous.
	minVehicleYear = 1950
	// yearHeadroom allows next-model-year stock to be registered early.
	yearHeadroom = 2

	maxChassisLength = 64
)

// ValidateChassisNumber enforces the structural rules for a chassis number:
// non-empty after trimming, bounded length, printable characters only.
// Uniqueness is a store-level concern and is not checked here.
func ValidateChassisNumber(chassis string) error {
	s := strings.TrimSpace(chassis)
	if s == "" {
		return fmt.Errorf("chassis number is required")
	}
	if len(s) > maxChassisLength {
		return fmt.Errorf("chassis number must not exceed %d characters", maxChassisLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("chassis number must not contain whitespace or control characters")
		}
	}
	return nil
}

// ValidateVehicle performs the domain-level field checks on a fully
// constructed Vehicle before it is persisted. Violations are wrapped in
// ErrInvalidVehicle so the transport layer maps them uniformly.
func ValidateVehicle(v *models.Vehicle, now time.Time) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle cannot be nil", invdomain.ErrInvalidVehicle)
	}
	if v.ID == uuid.Nil {
		return fmt.Errorf("%w: id must be set", invdomain.ErrInvalidVehicle)
	}
	if err := ValidateChassisNumber(v.ChassisNumber); err != nil {
		return fmt.Errorf("%w: %w", invdomain.ErrInvalidVehicle, err)
	}
	if !v.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", invdomain.ErrInvalidVehicle, v.Status)
	}
	if v.Year != 0 && (v.Year < minVehicleYear || v.Year > now.Year()+yearHeadroom) {
		return fmt.Errorf("%w: year %d out of range", invdomain.ErrInvalidVehicle, v.Year)
	}
	if v.Price != nil && *v.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", invdomain.ErrInvalidVehicle)
	}
	if v.SalePrice != nil && *v.SalePrice < 0 {
		return fmt.Errorf("%w: sale price must not be negative", invdomain.ErrInvalidVehicle)
	}
	// The Sold flag and the status enum describe the same fact and must agree.
	if v.Sold != (v.Status == models.StatusSold) {
		return fmt.Errorf("%w: sold flag disagrees with status %q", invdomain.ErrInvalidVehicle, v.Status)
	}
	return nil
}
