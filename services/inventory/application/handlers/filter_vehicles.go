package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
	domainsvcs "github.com/ghuser/dealerstock/services/inventory/domain/services"
)

// FilterVehiclesResponse is returned by GET /inventory/filter: the matching
// rows plus recomputed option lists for every facet.
type FilterVehiclesResponse struct {
	Vehicles []VehicleResponse         `json:"vehicles"`
	Total    int                       `json:"total"`
	Facets   []domainsvcs.FacetOptions `json:"facets"`
} // @name FilterVehiclesResponse

// FilterVehiclesHandler handles GET /inventory/filter requests.
type FilterVehiclesHandler struct {
	svc *appsvcs.Services
}

// NewFilterVehiclesHandler returns a FilterVehiclesHandler backed by the given services.
func NewFilterVehiclesHandler(svc *appsvcs.Services) *FilterVehiclesHandler {
	return &FilterVehiclesHandler{svc: svc}
}

// Execute runs the faceted filter. Facet constraints arrive as repeated query
// parameters named after the facet (e.g. ?manufacturer=Toyota&category=Camry
// &category=Corolla); repeated values within one facet are OR-ed, facets are
// AND-ed. q, entry_from, entry_to, and visibility apply globally.
//
//	@Summary		Filter vehicles
//	@Description	Hierarchical faceted filter with recomputed option counts
//	@Tags			inventory
//	@Produce		json
//	@Param			manufacturer	query		string	false	"Manufacturer constraint (repeatable)"
//	@Param			category		query		string	false	"Category constraint (repeatable)"
//	@Param			trim_level		query		string	false	"Trim level constraint (repeatable)"
//	@Param			year			query		string	false	"Year constraint (repeatable)"
//	@Param			status			query		string	false	"Status constraint (repeatable)"
//	@Param			q				query		string	false	"Free-text search applied before faceting"
//	@Param			entry_from		query		string	false	"Entry date lower bound (RFC 3339 or YYYY-MM-DD)"
//	@Param			entry_to		query		string	false	"Entry date upper bound (RFC 3339 or YYYY-MM-DD)"
//	@Param			visibility		query		string	false	"all, unsold, or sold"	Enums(all, unsold, sold)
//	@Success		200				{object}	FilterVehiclesResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/inventory/filter [get]
func (h *FilterVehiclesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	sel, ok := parseSelection(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Inventory.Filter(r.Context(), id.Role, sel)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, FilterVehiclesResponse{
		Vehicles: toVehicleResponses(res.Vehicles),
		Total:    len(res.Vehicles),
		Facets:   res.Facets,
	})
}

// parseSelection builds a filter selection from query parameters, writing a
// 400 on malformed dates or visibility values.
func parseSelection(w http.ResponseWriter, r *http.Request) (domainsvcs.Selection, bool) {
	q := r.URL.Query()
	sel := domainsvcs.Selection{Search: q.Get("q")}

	for _, f := range domainsvcs.FacetHierarchy {
		vals := q[string(f)]
		if len(vals) == 0 {
			continue
		}
		if sel.Facets == nil {
			sel.Facets = make(map[domainsvcs.Facet][]string)
		}
		sel.Facets[f] = vals
	}

	var ok bool
	if sel.EntryFrom, ok = parseDate(w, q.Get("entry_from"), "entry_from"); !ok {
		return domainsvcs.Selection{}, false
	}
	if sel.EntryTo, ok = parseDate(w, q.Get("entry_to"), "entry_to"); !ok {
		return domainsvcs.Selection{}, false
	}

	switch v := domainsvcs.Visibility(q.Get("visibility")); v {
	case domainsvcs.VisibilityAll, domainsvcs.VisibilityUnsold, domainsvcs.VisibilitySold:
		sel.Visibility = v
	case "all":
		sel.Visibility = domainsvcs.VisibilityAll
	default:
		httpx.JSONError(w, http.StatusBadRequest, "invalid visibility value")
		return domainsvcs.Selection{}, false
	}
	return sel, true
}

func parseDate(w http.ResponseWriter, s, name string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	httpx.JSONError(w, http.StatusBadRequest, "invalid "+name+" date")
	return nil, false
}
