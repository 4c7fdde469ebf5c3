package handlers

import (
	"net/http"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
	domainsvcs "github.com/ghuser/dealerstock/services/inventory/domain/services"
)

// StatsHandler handles GET /inventory/stats requests.
type StatsHandler struct {
	svc *appsvcs.Services
}

// NewStatsHandler returns a StatsHandler backed by the given services.
func NewStatsHandler(svc *appsvcs.Services) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Execute summarizes the stock per lifecycle state. The same filter query
// parameters as /inventory/filter narrow the summary to the filtered view.
//
//	@Summary		Stock summary
//	@Tags			stats
//	@Produce		json
//	@Param			manufacturer	query		string	false	"Manufacturer constraint (repeatable)"
//	@Param			q				query		string	false	"Free-text search"
//	@Param			visibility		query		string	false	"all, unsold, or sold"	Enums(all, unsold, sold)
//	@Success		200				{object}	services.Summary
//	@Failure		401				{object}	ErrorResponse
//	@Router			/inventory/stats [get]
func (h *StatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var sel *domainsvcs.Selection
	if len(r.URL.Query()) > 0 {
		parsed, ok := parseSelection(w, r)
		if !ok {
			return
		}
		sel = &parsed
	}

	summary, err := h.svc.Inventory.Stats(r.Context(), id.Role, sel)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

// ManufacturerStatsHandler handles GET /inventory/stats/manufacturers requests.
type ManufacturerStatsHandler struct {
	svc *appsvcs.Services
}

// NewManufacturerStatsHandler returns a ManufacturerStatsHandler backed by the given services.
func NewManufacturerStatsHandler(svc *appsvcs.Services) *ManufacturerStatsHandler {
	return &ManufacturerStatsHandler{svc: svc}
}

// Execute buckets the stock per manufacturer with an import-type breakdown.
//
//	@Summary		Per-manufacturer stats
//	@Tags			stats
//	@Produce		json
//	@Success		200	{array}		services.ManufacturerStats
//	@Failure		401	{object}	ErrorResponse
//	@Router			/inventory/stats/manufacturers [get]
func (h *ManufacturerStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.Inventory.ManufacturerStats(r.Context(), id.Role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

// LocationStatsHandler handles GET /inventory/stats/locations requests.
type LocationStatsHandler struct {
	svc *appsvcs.Services
}

// NewLocationStatsHandler returns a LocationStatsHandler backed by the given services.
func NewLocationStatsHandler(svc *appsvcs.Services) *LocationStatsHandler {
	return &LocationStatsHandler{svc: svc}
}

// Execute buckets the stock per location with a status breakdown.
//
//	@Summary		Per-location stats
//	@Tags			stats
//	@Produce		json
//	@Success		200	{array}		services.LocationStats
//	@Failure		401	{object}	ErrorResponse
//	@Router			/inventory/stats/locations [get]
func (h *LocationStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.Inventory.LocationStats(r.Context(), id.Role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
