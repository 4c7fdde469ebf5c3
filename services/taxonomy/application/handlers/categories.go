package handlers

import (
	"net/http"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
	appsvcs "github.com/ghuser/dealerstock/services/taxonomy/application/services"
)

// PostCategoryHandler handles POST /taxonomy/manufacturers/{id}/categories requests.
type PostCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPostCategoryHandler returns a PostCategoryHandler backed by the given services.
func NewPostCategoryHandler(svc *appsvcs.Services) *PostCategoryHandler {
	return &PostCategoryHandler{svc: svc}
}

// Execute adds a model line under a manufacturer.
//
//	@Summary		Add category
//	@Tags			taxonomy
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Manufacturer id"
//	@Param			request	body		CreateNodeRequest	true	"Category name"
//	@Success		201		{object}	NodeResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/taxonomy/manufacturers/{id}/categories [post]
func (h *PostCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateNodeRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Taxonomy.AddCategory(r.Context(), parentID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, categoryResponse(c))
}

// ListCategoriesHandler handles GET /taxonomy/manufacturers/{id}/categories requests.
type ListCategoriesHandler struct {
	svc *appsvcs.Services
}

// NewListCategoriesHandler returns a ListCategoriesHandler backed by the given services.
func NewListCategoriesHandler(svc *appsvcs.Services) *ListCategoriesHandler {
	return &ListCategoriesHandler{svc: svc}
}

// Execute lists a manufacturer's model lines, sorted by name.
//
//	@Summary		List categories
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id	path		string	true	"Manufacturer id"
//	@Success		200	{array}		NodeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/taxonomy/manufacturers/{id}/categories [get]
func (h *ListCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	cs, err := h.svc.Taxonomy.ListCategories(r.Context(), parentID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]NodeResponse, len(cs))
	for i, c := range cs {
		out[i] = categoryResponse(c)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// DeleteCategoryHandler handles DELETE /taxonomy/categories/{id} requests.
type DeleteCategoryHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCategoryHandler returns a DeleteCategoryHandler backed by the given services.
func NewDeleteCategoryHandler(svc *appsvcs.Services) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{svc: svc}
}

// Execute removes a category. Rejected with 409 while trim levels remain.
//
//	@Summary		Delete category
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id	path	string	true	"Category id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/taxonomy/categories/{id} [delete]
func (h *DeleteCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Taxonomy.DeleteCategory(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
