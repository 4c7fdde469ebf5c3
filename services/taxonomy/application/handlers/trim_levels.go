package handlers

import (
	"net/http"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
	appsvcs "github.com/ghuser/dealerstock/services/taxonomy/application/services"
)

// PostTrimLevelHandler handles POST /taxonomy/categories/{id}/trims requests.
type PostTrimLevelHandler struct {
	svc *appsvcs.Services
}

// NewPostTrimLevelHandler returns a PostTrimLevelHandler backed by the given services.
func NewPostTrimLevelHandler(svc *appsvcs.Services) *PostTrimLevelHandler {
	return &PostTrimLevelHandler{svc: svc}
}

// Execute adds a trim level under a category.
//
//	@Summary		Add trim level
//	@Tags			taxonomy
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Category id"
//	@Param			request	body		CreateNodeRequest	true	"Trim name"
//	@Success		201		{object}	NodeResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/taxonomy/categories/{id}/trims [post]
func (h *PostTrimLevelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateNodeRequest](w, r)
	if !ok {
		return
	}
	t, err := h.svc.Taxonomy.AddTrimLevel(r.Context(), parentID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, trimResponse(t))
}

// ListTrimLevelsHandler handles GET /taxonomy/categories/{id}/trims requests.
type ListTrimLevelsHandler struct {
	svc *appsvcs.Services
}

// NewListTrimLevelsHandler returns a ListTrimLevelsHandler backed by the given services.
func NewListTrimLevelsHandler(svc *appsvcs.Services) *ListTrimLevelsHandler {
	return &ListTrimLevelsHandler{svc: svc}
}

// Execute lists a category's trim levels, sorted by name.
//
//	@Summary		List trim levels
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id	path		string	true	"Category id"
//	@Success		200	{array}		NodeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/taxonomy/categories/{id}/trims [get]
func (h *ListTrimLevelsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ts, err := h.svc.Taxonomy.ListTrimLevels(r.Context(), parentID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]NodeResponse, len(ts))
	for i, t := range ts {
		out[i] = trimResponse(t)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// DeleteTrimLevelHandler handles DELETE /taxonomy/trims/{id} requests.
type DeleteTrimLevelHandler struct {
	svc *appsvcs.Services
}

// NewDeleteTrimLevelHandler returns a DeleteTrimLevelHandler backed by the given services.
func NewDeleteTrimLevelHandler(svc *appsvcs.Services) *DeleteTrimLevelHandler {
	return &DeleteTrimLevelHandler{svc: svc}
}

// Execute removes a trim level leaf.
//
//	@Summary		Delete trim level
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id	path	string	true	"Trim level id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/taxonomy/trims/{id} [delete]
func (h *DeleteTrimLevelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Taxonomy.DeleteTrimLevel(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TreeHandler handles GET /taxonomy/tree requests.
type TreeHandler struct {
	svc *appsvcs.Services
}

// NewTreeHandler returns a TreeHandler backed by the given services.
func NewTreeHandler(svc *appsvcs.Services) *TreeHandler {
	return &TreeHandler{svc: svc}
}

// Execute returns the whole joined taxonomy in one response, shaped for
// populating the cascading dropdowns on the vehicle entry form.
//
//	@Summary		Taxonomy tree
//	@Tags			taxonomy
//	@Produce		json
//	@Success		200	{object}	models.Tree
//	@Failure		401	{object}	ErrorResponse
//	@Router			/taxonomy/tree [get]
func (h *TreeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.Taxonomy.Tree(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tree)
}
