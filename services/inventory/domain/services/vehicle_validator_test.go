package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

func TestValidateChassisNumber(t *testing.T) {
	tests := []struct {
		name    string
		chassis string
		wantErr bool
	}{
		{"plain vin", "JTDBR32E720059521", false},
		{"with dashes", "CH-2024-0001", false},
		{"max length", strings.Repeat("A", 64), false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("A", 65), true},
		{"internal space", "CH 001", true},
		{"tab", "CH\t001", true},
		{"control character", "CH\x00001", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChassisNumber(tt.chassis)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateChassisNumber(%q) = %v, wantErr %v", tt.chassis, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVehicle(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	valid := func() *models.Vehicle {
		v := models.NewVehicle("CH-0001")
		v.Year = 2024
		return v
	}

	t.Run("valid vehicle", func(t *testing.T) {
		if err := ValidateVehicle(valid(), now); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})

	t.Run("nil vehicle", func(t *testing.T) {
		if err := ValidateVehicle(nil, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		v := valid()
		v.ID = uuid.Nil
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("bad chassis", func(t *testing.T) {
		v := valid()
		v.ChassisNumber = ""
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		v := valid()
		v.Status = "scrapped"
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("year bounds", func(t *testing.T) {
		for _, year := range []int{1949, now.Year() + 3} {
			v := valid()
			v.Year = year
			if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
				t.Fatalf("year %d: expected ErrInvalidVehicle, got %v", year, err)
			}
		}
		for _, year := range []int{0, 1950, now.Year() + 2} {
			v := valid()
			v.Year = year
			if err := ValidateVehicle(v, now); err != nil {
				t.Fatalf("year %d: expected valid, got %v", year, err)
			}
		}
	})

	t.Run("negative price", func(t *testing.T) {
		v := valid()
		v.Price = price(-100)
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("negative sale price", func(t *testing.T) {
		v := valid()
		v.SalePrice = price(-1)
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("sold flag must agree with status", func(t *testing.T) {
		v := valid()
		v.Sold = true
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle for flag without status, got %v", err)
		}

		v = valid()
		v.Status = models.StatusSold
		if err := ValidateVehicle(v, now); !errors.Is(err, invdomain.ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle for status without flag, got %v", err)
		}

		v = valid()
		v.Status = models.StatusSold
		v.Sold = true
		if err := ValidateVehicle(v, now); err != nil {
			t.Fatalf("agreeing flag and status must validate, got %v", err)
		}
	})
}
