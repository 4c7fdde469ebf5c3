package services

import (
	"testing"

	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

func statsFleet() []*models.Vehicle {
	mk := func(chassis, manufacturer, location, importType string, status models.Status) *models.Vehicle {
		v := models.NewVehicle(chassis)
		v.Manufacturer = manufacturer
		v.Location = location
		v.ImportType = importType
		v.Status = status
		v.Sold = status == models.StatusSold
		return v
	}
	return []*models.Vehicle{
		mk("F-1", "Toyota", "Main Showroom", "gcc", models.StatusAvailable),
		mk("F-2", "Toyota", "Main Showroom", "us_import", models.StatusReserved),
		mk("F-3", "Toyota", "Airport Branch", "gcc", models.StatusSold),
		mk("F-4", "Nissan", "Airport Branch", "gcc", models.StatusInTransit),
		mk("F-5", "Nissan", "Main Showroom", "japan_import", models.StatusMaintenance),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(statsFleet())

	if s.Total != 5 {
		t.Fatalf("total = %d, want 5", s.Total)
	}
	if s.Available != 1 || s.Reserved != 1 || s.Sold != 1 || s.InTransit != 1 || s.Maintenance != 1 {
		t.Fatalf("unexpected breakdown: %+v", s)
	}
	if sum := s.Available + s.InTransit + s.Maintenance + s.Reserved + s.Sold; sum != s.Total {
		t.Fatalf("state counts sum to %d, total is %d", sum, s.Total)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestByManufacturer(t *testing.T) {
	got := ByManufacturer(statsFleet())

	if len(got) != 2 {
		t.Fatalf("expected 2 manufacturers, got %d", len(got))
	}
	// Sorted by name.
	if got[0].Manufacturer != "Nissan" || got[1].Manufacturer != "Toyota" {
		t.Fatalf("not sorted by manufacturer: %v, %v", got[0].Manufacturer, got[1].Manufacturer)
	}
	toyota := got[1]
	if toyota.Total != 3 {
		t.Fatalf("Toyota total = %d, want 3", toyota.Total)
	}
	if toyota.ByImportType["gcc"] != 2 || toyota.ByImportType["us_import"] != 1 {
		t.Fatalf("unexpected Toyota import split: %v", toyota.ByImportType)
	}
	nissan := got[0]
	if nissan.Total != 2 || nissan.ByImportType["gcc"] != 1 || nissan.ByImportType["japan_import"] != 1 {
		t.Fatalf("unexpected Nissan bucket: %+v", nissan)
	}
}

func TestByManufacturer_BlankManufacturerKept(t *testing.T) {
	v := models.NewVehicle("F-9")
	got := ByManufacturer([]*models.Vehicle{v})
	if len(got) != 1 || got[0].Manufacturer != "" || got[0].Total != 1 {
		t.Fatalf("blank manufacturer must get its own bucket: %+v", got)
	}
}

func TestByLocation(t *testing.T) {
	got := ByLocation(statsFleet())

	if len(got) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(got))
	}
	if got[0].Location != "Airport Branch" || got[1].Location != "Main Showroom" {
		t.Fatalf("not sorted by location: %v, %v", got[0].Location, got[1].Location)
	}
	main := got[1]
	if main.Total != 3 {
		t.Fatalf("Main Showroom total = %d, want 3", main.Total)
	}
	if main.ByStatus["available"] != 1 || main.ByStatus["reserved"] != 1 || main.ByStatus["maintenance"] != 1 {
		t.Fatalf("unexpected Main Showroom status split: %v", main.ByStatus)
	}
	airport := got[0]
	if airport.Total != 2 || airport.ByStatus["sold"] != 1 || airport.ByStatus["in_transit"] != 1 {
		t.Fatalf("unexpected Airport Branch bucket: %+v", airport)
	}
}
