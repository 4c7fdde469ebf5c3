package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// Facet is one independent filter dimension of the inventory list.
type Facet string

const (
	FacetManufacturer   Facet = "manufacturer"
	FacetCategory       Facet = "category"
	FacetTrimLevel      Facet = "trim_level"
	FacetYear           Facet = "year"
	FacetEngineCapacity Facet = "engine_capacity"
	FacetExteriorColor  Facet = "exterior_color"
	FacetInteriorColor  Facet = "interior_color"
	FacetStatus         Facet = "status"
	FacetImportType     Facet = "import_type"
	FacetOwnershipType  Facet = "ownership_type"
)

// FacetHierarchy is the fixed order in which facets narrow each other.
// A facet's option counts are constrained only by the facets before it here;
// selections in later facets never reach back up the hierarchy.
var FacetHierarchy = []Facet{
	FacetManufacturer,
	FacetCategory,
	FacetTrimLevel,
	FacetYear,
	FacetEngineCapacity,
	FacetExteriorColor,
	FacetInteriorColor,
	FacetStatus,
	FacetImportType,
	FacetOwnershipType,
}

// Visibility selects which partition of the stock a filter run sees.
type Visibility string

const (
	// VisibilityAll is the zero value: no partition constraint.
	VisibilityAll Visibility = ""
	// VisibilityUnsold hides sold vehicles.
	VisibilityUnsold Visibility = "unsold"
	// VisibilitySold shows sold vehicles only.
	VisibilitySold Visibility = "sold"
)

// Selection is the ephemeral filter state sent by the UI on every
// interaction. It has no identity and is never persisted; an empty selection
// for a facet means "no constraint from this facet".
type Selection struct {
	Facets     map[Facet][]string
	Search     string
	EntryFrom  *time.Time
	EntryTo    *time.Time
	Visibility Visibility
}

// selected returns the chosen values for a facet, nil when unconstrained.
func (s Selection) selected(f Facet) []string {
	if s.Facets == nil {
		return nil
	}
	return s.Facets[f]
}

// without returns a copy of the selection with one facet's constraint removed.
func (s Selection) without(f Facet) Selection {
	if len(s.selected(f)) == 0 {
		return s
	}
	facets := make(map[Facet][]string, len(s.Facets))
	for k, v := range s.Facets {
		if k != f {
			facets[k] = v
		}
	}
	c := s
	c.Facets = facets
	return c
}

// FacetOption is one offerable value with the row count it would yield.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetOptions is the computed option list for one facet. Total is the size
// of the facet's base set — the count the "show all" sentinel must report.
type FacetOptions struct {
	Facet   Facet         `json:"facet"`
	Total   int           `json:"total"`
	Options []FacetOption `json:"options"`
}

// FacetValue extracts the facet's string value from a vehicle. Years are
// rendered as decimal strings so all facets share one comparison path.
func FacetValue(v *models.Vehicle, f Facet) string {
	switch f {
	case FacetManufacturer:
		return v.Manufacturer
	case FacetCategory:
		return v.Category
	case FacetTrimLevel:
		return v.TrimLevel
	case FacetYear:
		if v.Year == 0 {
			return ""
		}
		return strconv.Itoa(v.Year)
	case FacetEngineCapacity:
		return v.EngineCapacity
	case FacetExteriorColor:
		return v.ExteriorColor
	case FacetInteriorColor:
		return v.InteriorColor
	case FacetStatus:
		return v.Status.String()
	case FacetImportType:
		return v.ImportType
	case FacetOwnershipType:
		return v.OwnershipType
	}
	return ""
}

// Apply returns the vehicles matching every constraint of the selection:
// the free-text search, every facet with a non-empty selection (OR within a
// facet, AND across facets), the entry-date range, and the visibility
// partition. It never fails; no matches is an empty slice.
func Apply(items []*models.Vehicle, sel Selection) []*models.Vehicle {
	out := make([]*models.Vehicle, 0, len(items))
	for _, v := range items {
		if matches(v, sel) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v *models.Vehicle, sel Selection) bool {
	if !matchesGlobal(v, sel) {
		return false
	}
	for _, f := range FacetHierarchy {
		if !matchesFacet(v, f, sel.selected(f)) {
			return false
		}
	}
	return true
}

// matchesGlobal checks the non-facet constraints: search, date range,
// sold/unsold visibility.
func matchesGlobal(v *models.Vehicle, sel Selection) bool {
	switch sel.Visibility {
	case VisibilityUnsold:
		if v.Sold || v.Status == models.StatusSold {
			return false
		}
	case VisibilitySold:
		if !v.Sold && v.Status != models.StatusSold {
			return false
		}
	}
	if sel.EntryFrom != nil && v.EntryDate.Before(*sel.EntryFrom) {
		return false
	}
	if sel.EntryTo != nil && v.EntryDate.After(*sel.EntryTo) {
		return false
	}
	return MatchesSearch(v, sel.Search)
}

func matchesFacet(v *models.Vehicle, f Facet, chosen []string) bool {
	if len(chosen) == 0 {
		return true
	}
	val := FacetValue(v, f)
	for _, c := range chosen {
		if strings.EqualFold(val, c) {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether the vehicle matches the free-text query.
// Matching is case-insensitive substring containment over the fixed set of
// text fields plus the year rendered as a string. An empty query matches
// everything.
func MatchesSearch(v *models.Vehicle, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	fields := []string{
		v.ChassisNumber,
		v.Manufacturer,
		v.Category,
		v.TrimLevel,
		v.EngineCapacity,
		v.ExteriorColor,
		v.InteriorColor,
		v.Location,
		v.Status.String(),
		v.ImportType,
		v.OwnershipType,
		v.Notes,
	}
	if v.Year != 0 {
		fields = append(fields, strconv.Itoa(v.Year))
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Options computes, for every facet in hierarchy order, the offerable values
// and the row count each would yield if selected next.
//
// Two different sets feed each facet:
//   - values come from the collection filtered by every constraint except the
//     facet's own selection, so picking one value keeps its siblings offerable;
//   - counts come from the facet's base set: the collection narrowed by the
//     global constraints and by the selected facets earlier in the hierarchy
//     only. Selections later in the hierarchy never shrink an earlier facet's
//     counts — the drill-down cascades in one direction.
//
// Total carries the base-set size, which is what the "show all" sentinel
// option must report instead of any data value's count.
func Options(items []*models.Vehicle, sel Selection) []FacetOptions {
	// Base sets per hierarchy position, built incrementally: position k is the
	// previous base narrowed by facet k-1's selection.
	base := make([]*models.Vehicle, 0, len(items))
	for _, v := range items {
		if matchesGlobal(v, sel) {
			base = append(base, v)
		}
	}

	out := make([]FacetOptions, 0, len(FacetHierarchy))
	for _, f := range FacetHierarchy {
		counts := make(map[string]int, 16)
		for _, v := range base {
			if val := FacetValue(v, f); val != "" {
				counts[val]++
			}
		}

		// Offerable values: everything still reachable once all the other
		// facets' selections are applied.
		offerable := make(map[string]bool, len(counts))
		for _, v := range Apply(items, sel.without(f)) {
			if val := FacetValue(v, f); val != "" {
				offerable[val] = true
			}
		}

		opts := make([]FacetOption, 0, len(offerable))
		for val := range offerable {
			opts = append(opts, FacetOption{Value: val, Count: counts[val]})
		}
		sortOptions(f, opts)

		out = append(out, FacetOptions{Facet: f, Total: len(base), Options: opts})

		// Narrow the base for the next position by this facet's selection.
		if chosen := sel.selected(f); len(chosen) > 0 {
			narrowed := base[:0:0]
			for _, v := range base {
				if matchesFacet(v, f, chosen) {
					narrowed = append(narrowed, v)
				}
			}
			base = narrowed
		}
	}
	return out
}

// sortOptions orders facet values: years numerically descending, everything
// else as plain text ascending.
func sortOptions(f Facet, opts []FacetOption) {
	if f == FacetYear {
		sort.Slice(opts, func(i, j int) bool {
			a, _ := strconv.Atoi(opts[i].Value)
			b, _ := strconv.Atoi(opts[j].Value)
			return a > b
		})
		return
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Value < opts[j].Value })
}
