package services

import (
	"testing"
	"time"

	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// showroom builds the fixture collection used by most filter tests:
// two Toyotas (Camry SE 2024, Corolla LE 2023) and one Nissan (Altima SE 2024).
func showroom() []*models.Vehicle {
	camry := models.NewVehicle("CAMRY-001")
	camry.Manufacturer = "Toyota"
	camry.Category = "Camry"
	camry.TrimLevel = "SE"
	camry.Year = 2024
	camry.ExteriorColor = "White"

	corolla := models.NewVehicle("COROLLA-001")
	corolla.Manufacturer = "Toyota"
	corolla.Category = "Corolla"
	corolla.TrimLevel = "LE"
	corolla.Year = 2023
	corolla.ExteriorColor = "Silver"

	altima := models.NewVehicle("ALTIMA-001")
	altima.Manufacturer = "Nissan"
	altima.Category = "Altima"
	altima.TrimLevel = "SE"
	altima.Year = 2024
	altima.ExteriorColor = "White"

	return []*models.Vehicle{camry, corolla, altima}
}

func selection(facets map[Facet][]string) Selection {
	return Selection{Facets: facets}
}

func optionsFor(t *testing.T, all []FacetOptions, f Facet) FacetOptions {
	t.Helper()
	for _, fo := range all {
		if fo.Facet == f {
			return fo
		}
	}
	t.Fatalf("no options computed for facet %s", f)
	return FacetOptions{}
}

func count(t *testing.T, fo FacetOptions, value string) int {
	t.Helper()
	for _, o := range fo.Options {
		if o.Value == value {
			return o.Count
		}
	}
	t.Fatalf("facet %s has no option %q (got %v)", fo.Facet, value, fo.Options)
	return 0
}

func TestApply_EmptySelectionMatchesEverything(t *testing.T) {
	items := showroom()
	got := Apply(items, Selection{})
	if len(got) != len(items) {
		t.Fatalf("expected %d vehicles, got %d", len(items), len(got))
	}
}

func TestApply_FacetValuesORWithinAndAcross(t *testing.T) {
	items := showroom()

	// OR within one facet: Camry or Corolla.
	got := Apply(items, selection(map[Facet][]string{
		FacetCategory: {"Camry", "Corolla"},
	}))
	if len(got) != 2 {
		t.Fatalf("expected 2 vehicles for Camry|Corolla, got %d", len(got))
	}

	// AND across facets: Toyota AND trim SE leaves only the Camry.
	got = Apply(items, selection(map[Facet][]string{
		FacetManufacturer: {"Toyota"},
		FacetTrimLevel:    {"SE"},
	}))
	if len(got) != 1 || got[0].Category != "Camry" {
		t.Fatalf("expected only the Camry, got %d vehicles", len(got))
	}
}

func TestApply_FacetMatchIsCaseInsensitive(t *testing.T) {
	items := showroom()
	got := Apply(items, selection(map[Facet][]string{
		FacetManufacturer: {"toyota"},
	}))
	if len(got) != 2 {
		t.Fatalf("expected 2 vehicles for lowercase manufacturer, got %d", len(got))
	}
}

func TestApply_Visibility(t *testing.T) {
	items := showroom()
	items[0].Status = models.StatusSold
	items[0].Sold = true

	unsold := Apply(items, Selection{Visibility: VisibilityUnsold})
	if len(unsold) != 2 {
		t.Fatalf("expected 2 unsold vehicles, got %d", len(unsold))
	}
	sold := Apply(items, Selection{Visibility: VisibilitySold})
	if len(sold) != 1 {
		t.Fatalf("expected 1 sold vehicle, got %d", len(sold))
	}
}

func TestApply_LegacySoldFlagAloneHidesFromUnsold(t *testing.T) {
	items := showroom()
	// Flag set but status not yet migrated; both reads must agree.
	items[1].Sold = true

	unsold := Apply(items, Selection{Visibility: VisibilityUnsold})
	if len(unsold) != 2 {
		t.Fatalf("expected 2 unsold vehicles, got %d", len(unsold))
	}
	sold := Apply(items, Selection{Visibility: VisibilitySold})
	if len(sold) != 1 {
		t.Fatalf("expected 1 sold vehicle, got %d", len(sold))
	}
}

func TestApply_EntryDateRange(t *testing.T) {
	items := showroom()
	items[0].EntryDate = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	items[1].EntryDate = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	items[2].EntryDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	got := Apply(items, Selection{EntryFrom: &from, EntryTo: &to})
	if len(got) != 1 || got[0].Category != "Corolla" {
		t.Fatalf("expected only the February entry, got %d vehicles", len(got))
	}
}

func TestMatchesSearch(t *testing.T) {
	v := models.NewVehicle("JTDBR32E720059521")
	v.Manufacturer = "Toyota"
	v.Category = "Land Cruiser"
	v.Year = 2022
	v.Notes = "minor scratch on rear bumper"

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"toyota", true},
		{"TOYOTA", true},
		{"land cr", true},
		{"2022", true},
		{"scratch", true},
		{"jtdbr32e", true},
		{"nissan", false},
		{"2023", false},
	}
	for _, tt := range tests {
		if got := MatchesSearch(v, tt.query); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestOptions_NoSelectionCountsWholeCollection(t *testing.T) {
	items := showroom()
	opts := Options(items, Selection{})

	mf := optionsFor(t, opts, FacetManufacturer)
	if mf.Total != 3 {
		t.Fatalf("manufacturer total = %d, want 3", mf.Total)
	}
	if count(t, mf, "Toyota") != 2 || count(t, mf, "Nissan") != 1 {
		t.Fatalf("unexpected manufacturer counts: %v", mf.Options)
	}
}

func TestOptions_SelectionDoesNotCollapseOwnFacet(t *testing.T) {
	items := showroom()
	opts := Options(items, selection(map[Facet][]string{
		FacetManufacturer: {"Toyota"},
	}))

	// The manufacturer list still offers both makes with their full counts, so
	// the user can switch the selection without clearing it first.
	mf := optionsFor(t, opts, FacetManufacturer)
	if count(t, mf, "Toyota") != 2 || count(t, mf, "Nissan") != 1 {
		t.Fatalf("unexpected manufacturer counts: %v", mf.Options)
	}

	// Categories narrow to the selected make.
	cat := optionsFor(t, opts, FacetCategory)
	if len(cat.Options) != 2 {
		t.Fatalf("expected 2 categories under Toyota, got %v", cat.Options)
	}
	if count(t, cat, "Camry") != 1 || count(t, cat, "Corolla") != 1 {
		t.Fatalf("unexpected category counts: %v", cat.Options)
	}
	if cat.Total != 2 {
		t.Fatalf("category total = %d, want 2", cat.Total)
	}
}

func TestOptions_LaterSelectionNarrowsEarlierFacetValuesNotCounts(t *testing.T) {
	items := showroom()
	opts := Options(items, selection(map[Facet][]string{
		FacetTrimLevel: {"LE"},
	}))

	// Only Toyota has an LE trim, so Nissan drops off the manufacturer list,
	// but Toyota's count stays at its unconstrained 2: trim level sits below
	// manufacturer in the hierarchy and never reaches back up.
	mf := optionsFor(t, opts, FacetManufacturer)
	if len(mf.Options) != 1 {
		t.Fatalf("expected only Toyota offerable, got %v", mf.Options)
	}
	if count(t, mf, "Toyota") != 2 {
		t.Fatalf("Toyota count = %d, want 2", count(t, mf, "Toyota"))
	}
	if mf.Total != 3 {
		t.Fatalf("manufacturer total = %d, want 3", mf.Total)
	}

	// Category also sits above trim level: only the Corolla carries LE, and
	// its count is the category base count.
	cat := optionsFor(t, opts, FacetCategory)
	if len(cat.Options) != 1 || count(t, cat, "Corolla") != 1 {
		t.Fatalf("unexpected category options: %v", cat.Options)
	}
}

func TestOptions_StatusSelectionKeepsUpperFacetCounts(t *testing.T) {
	items := showroom()
	items[0].Status = models.StatusReserved

	opts := Options(items, selection(map[Facet][]string{
		FacetStatus: {"reserved"},
	}))

	mf := optionsFor(t, opts, FacetManufacturer)
	// Only the reserved Camry survives the value cut, yet Toyota still counts
	// both its vehicles.
	if len(mf.Options) != 1 || count(t, mf, "Toyota") != 2 {
		t.Fatalf("unexpected manufacturer options: %v", mf.Options)
	}
}

func TestOptions_SearchConstrainsAllFacets(t *testing.T) {
	items := showroom()
	opts := Options(items, Selection{Search: "altima"})

	mf := optionsFor(t, opts, FacetManufacturer)
	if len(mf.Options) != 1 || count(t, mf, "Nissan") != 1 {
		t.Fatalf("unexpected manufacturer options under search: %v", mf.Options)
	}
	if mf.Total != 1 {
		t.Fatalf("manufacturer total under search = %d, want 1", mf.Total)
	}
}

func TestOptions_YearsSortDescending(t *testing.T) {
	items := showroom()
	opts := Options(items, Selection{})

	years := optionsFor(t, opts, FacetYear)
	if len(years.Options) != 2 {
		t.Fatalf("expected 2 year options, got %v", years.Options)
	}
	if years.Options[0].Value != "2024" || years.Options[1].Value != "2023" {
		t.Fatalf("years not sorted descending: %v", years.Options)
	}
}

func TestOptions_TextValuesSortAscending(t *testing.T) {
	items := showroom()
	opts := Options(items, Selection{})

	mf := optionsFor(t, opts, FacetManufacturer)
	if mf.Options[0].Value != "Nissan" || mf.Options[1].Value != "Toyota" {
		t.Fatalf("manufacturers not sorted ascending: %v", mf.Options)
	}
}

func TestOptions_EmptyFacetValuesAreNotOffered(t *testing.T) {
	items := showroom()
	for _, v := range items {
		v.EngineCapacity = ""
	}
	opts := Options(items, Selection{})

	ec := optionsFor(t, opts, FacetEngineCapacity)
	if len(ec.Options) != 0 {
		t.Fatalf("expected no engine capacity options, got %v", ec.Options)
	}
	if ec.Total != 3 {
		t.Fatalf("engine capacity total = %d, want 3", ec.Total)
	}
}

func TestOptions_EmptyCollection(t *testing.T) {
	opts := Options(nil, Selection{})
	if len(opts) != len(FacetHierarchy) {
		t.Fatalf("expected %d facet entries, got %d", len(FacetHierarchy), len(opts))
	}
	for _, fo := range opts {
		if fo.Total != 0 || len(fo.Options) != 0 {
			t.Fatalf("expected zeroed facet %s, got %+v", fo.Facet, fo)
		}
	}
}

func TestFacetValue_YearRendering(t *testing.T) {
	v := models.NewVehicle("X-1")
	if got := FacetValue(v, FacetYear); got != "" {
		t.Fatalf("zero year should render empty, got %q", got)
	}
	v.Year = 2021
	if got := FacetValue(v, FacetYear); got != "2021" {
		t.Fatalf("year rendering = %q, want 2021", got)
	}
}
