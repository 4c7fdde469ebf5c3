package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrVehicleNotFound indicates the requested vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrChassisExists indicates another active vehicle already holds the chassis number.
	ErrChassisExists = errors.New("chassis number already registered")

	// ErrInvalidVehicle indicates a field violates domain constraints
	// (missing chassis number, out-of-range year, negative price, ...).
	ErrInvalidVehicle = errors.New("invalid vehicle")

	// ErrInvalidTransition indicates a lifecycle operation was attempted from a
	// state that forbids it, e.g. selling an already-sold vehicle.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)
