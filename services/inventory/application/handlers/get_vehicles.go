package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
)

// ListVehiclesResponse is returned by GET /inventory.
type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
} // @name ListVehiclesResponse

// ListVehiclesHandler handles GET /inventory requests.
type ListVehiclesHandler struct {
	svc *appsvcs.Services
}

// NewListVehiclesHandler returns a ListVehiclesHandler backed by the given services.
func NewListVehiclesHandler(svc *appsvcs.Services) *ListVehiclesHandler {
	return &ListVehiclesHandler{svc: svc}
}

// Execute lists the stock visible to the caller's role.
//
//	@Summary		List vehicles
//	@Tags			inventory
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 50)"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{object}	ListVehiclesResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/inventory [get]
func (h *ListVehiclesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	vehicles, total, err := h.svc.Inventory.List(r.Context(), id.Role, limit, offset)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ListVehiclesResponse{
		Vehicles: toVehicleResponses(vehicles),
		Total:    total,
	})
}

// GetVehicleHandler handles GET /inventory/{id} requests.
type GetVehicleHandler struct {
	svc *appsvcs.Services
}

// NewGetVehicleHandler returns a GetVehicleHandler backed by the given services.
func NewGetVehicleHandler(svc *appsvcs.Services) *GetVehicleHandler {
	return &GetVehicleHandler{svc: svc}
}

// Execute fetches one vehicle by id.
//
//	@Summary		Get vehicle
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path		string	true	"Vehicle id"
//	@Success		200	{object}	VehicleResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id} [get]
func (h *GetVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVehicleResponse(v))
}

// SearchVehiclesHandler handles GET /inventory/search requests.
type SearchVehiclesHandler struct {
	svc *appsvcs.Services
}

// NewSearchVehiclesHandler returns a SearchVehiclesHandler backed by the given services.
func NewSearchVehiclesHandler(svc *appsvcs.Services) *SearchVehiclesHandler {
	return &SearchVehiclesHandler{svc: svc}
}

// Execute searches the stock by free text.
//
//	@Summary		Search vehicles
//	@Description	Case-insensitive substring match over chassis, taxonomy, colors, location, and notes
//	@Tags			inventory
//	@Produce		json
//	@Param			q	query		string	true	"Search text"
//	@Success		200	{object}	ListVehiclesResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/inventory/search [get]
func (h *SearchVehiclesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	vehicles, err := h.svc.Inventory.Search(r.Context(), id.Role, r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ListVehiclesResponse{
		Vehicles: toVehicleResponses(vehicles),
		Total:    len(vehicles),
	})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
