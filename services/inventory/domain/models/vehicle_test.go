package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewVehicle(t *testing.T) {
	v := NewVehicle("  jtdbr32e720059521  ")

	if v.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if v.ChassisNumber != "JTDBR32E720059521" {
		t.Errorf("chassis = %q, want trimmed uppercase", v.ChassisNumber)
	}
	if v.Status != StatusAvailable {
		t.Errorf("status = %v, want available", v.Status)
	}
	if v.Sold {
		t.Error("new vehicle must not be sold")
	}
	if v.EntryDate.IsZero() || v.EntryDate.Location() != time.UTC {
		t.Errorf("entry date = %v, want non-zero UTC", v.EntryDate)
	}
}

func TestVehicle_Clone(t *testing.T) {
	soldAt := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	reservedAt := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	listPrice := 120000.0
	salePrice := 115000.0

	v := NewVehicle("CH-1")
	v.Price = &listPrice
	v.SalePrice = &salePrice
	v.SoldDate = &soldAt
	v.ReservationDate = &reservedAt

	c := v.Clone()

	if c == v {
		t.Fatal("clone must be a distinct value")
	}
	if *c.Price != listPrice || *c.SalePrice != salePrice {
		t.Fatal("clone lost pointer values")
	}

	// Mutating the clone's pointer fields must not leak back.
	*c.Price = 1
	*c.SalePrice = 1
	*c.SoldDate = c.SoldDate.AddDate(1, 0, 0)
	*c.ReservationDate = c.ReservationDate.AddDate(1, 0, 0)

	if *v.Price != listPrice || *v.SalePrice != salePrice {
		t.Error("price pointers shared between clone and original")
	}
	if !v.SoldDate.Equal(soldAt) || !v.ReservationDate.Equal(reservedAt) {
		t.Error("date pointers shared between clone and original")
	}
}

func TestVehicle_CloneNilPointers(t *testing.T) {
	v := NewVehicle("CH-1")
	c := v.Clone()
	if c.Price != nil || c.SalePrice != nil || c.SoldDate != nil || c.ReservationDate != nil {
		t.Error("nil pointers must stay nil in the clone")
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.IsValid() {
			t.Errorf("%v should be valid", s)
		}
	}
	for _, s := range []Status{"", "scrapped", "SOLD"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}
