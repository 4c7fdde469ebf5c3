package handlers

import (
	"net/http"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
	appsvcs "github.com/ghuser/dealerstock/services/taxonomy/application/services"
)

// PostManufacturerHandler handles POST /taxonomy/manufacturers requests.
type PostManufacturerHandler struct {
	svc *appsvcs.Services
}

// NewPostManufacturerHandler returns a PostManufacturerHandler backed by the given services.
func NewPostManufacturerHandler(svc *appsvcs.Services) *PostManufacturerHandler {
	return &PostManufacturerHandler{svc: svc}
}

// Execute adds a manufacturer to the reference tree.
//
//	@Summary		Add manufacturer
//	@Tags			taxonomy
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateNodeRequest	true	"Manufacturer name"
//	@Success		201		{object}	NodeResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/taxonomy/manufacturers [post]
func (h *PostManufacturerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateNodeRequest](w, r)
	if !ok {
		return
	}
	m, err := h.svc.Taxonomy.AddManufacturer(r.Context(), req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, manufacturerResponse(m))
}

// ListManufacturersHandler handles GET /taxonomy/manufacturers requests.
type ListManufacturersHandler struct {
	svc *appsvcs.Services
}

// NewListManufacturersHandler returns a ListManufacturersHandler backed by the given services.
func NewListManufacturersHandler(svc *appsvcs.Services) *ListManufacturersHandler {
	return &ListManufacturersHandler{svc: svc}
}

// Execute lists all manufacturers, sorted by name.
//
//	@Summary		List manufacturers
//	@Tags			taxonomy
//	@Produce		json
//	@Success		200	{array}		NodeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/taxonomy/manufacturers [get]
func (h *ListManufacturersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Taxonomy.ListManufacturers(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]NodeResponse, len(ms))
	for i, m := range ms {
		out[i] = manufacturerResponse(m)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// DeleteManufacturerHandler handles DELETE /taxonomy/manufacturers/{id} requests.
type DeleteManufacturerHandler struct {
	svc *appsvcs.Services
}

// NewDeleteManufacturerHandler returns a DeleteManufacturerHandler backed by the given services.
func NewDeleteManufacturerHandler(svc *appsvcs.Services) *DeleteManufacturerHandler {
	return &DeleteManufacturerHandler{svc: svc}
}

// Execute removes a manufacturer. Rejected with 409 while categories remain
// under it.
//
//	@Summary		Delete manufacturer
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id	path	string	true	"Manufacturer id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/taxonomy/manufacturers/{id} [delete]
func (h *DeleteManufacturerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Taxonomy.DeleteManufacturer(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
