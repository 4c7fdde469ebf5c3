package services

import (
	"sort"

	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// Summary is the dashboard's top-line breakdown of a collection.
type Summary struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	InTransit   int `json:"in_transit"`
	Maintenance int `json:"maintenance"`
	Reserved    int `json:"reserved"`
	Sold        int `json:"sold"`
}

// ManufacturerStats is one manufacturer's share of a collection with a
// sub-split by import type.
type ManufacturerStats struct {
	Manufacturer string         `json:"manufacturer"`
	Total        int            `json:"total"`
	ByImportType map[string]int `json:"by_import_type"`
}

// LocationStats is one location's share of a collection with a sub-split by
// lifecycle status.
type LocationStats struct {
	Location string         `json:"location"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// Summarize counts the collection by lifecycle status. It is a pure read over
// whatever snapshot the caller hands in — the full store for global dashboard
// numbers, a filter result for filtered-view numbers.
func Summarize(items []*models.Vehicle) Summary {
	s := Summary{Total: len(items)}
	for _, v := range items {
		switch v.Status {
		case models.StatusAvailable:
			s.Available++
		case models.StatusInTransit:
			s.InTransit++
		case models.StatusMaintenance:
			s.Maintenance++
		case models.StatusReserved:
			s.Reserved++
		case models.StatusSold:
			s.Sold++
		}
	}
	return s
}

// ByManufacturer buckets the collection per manufacturer, each with an
// import-type sub-split, sorted by manufacturer name. Vehicles without a
// manufacturer land in the "" bucket rather than being dropped.
func ByManufacturer(items []*models.Vehicle) []ManufacturerStats {
	buckets := make(map[string]*ManufacturerStats)
	for _, v := range items {
		b, ok := buckets[v.Manufacturer]
		if !ok {
			b = &ManufacturerStats{Manufacturer: v.Manufacturer, ByImportType: make(map[string]int)}
			buckets[v.Manufacturer] = b
		}
		b.Total++
		b.ByImportType[v.ImportType]++
	}
	return sortedValues(buckets, func(s *ManufacturerStats) string { return s.Manufacturer })
}

// ByLocation buckets the collection per location, each with a status
// sub-split, sorted by location name.
func ByLocation(items []*models.Vehicle) []LocationStats {
	buckets := make(map[string]*LocationStats)
	for _, v := range items {
		b, ok := buckets[v.Location]
		if !ok {
			b = &LocationStats{Location: v.Location, ByStatus: make(map[string]int)}
			buckets[v.Location] = b
		}
		b.Total++
		b.ByStatus[v.Status.String()]++
	}
	return sortedValues(buckets, func(s *LocationStats) string { return s.Location })
}

func sortedValues[T any](m map[string]*T, key func(*T) string) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return key(&out[i]) < key(&out[j]) })
	return out
}
