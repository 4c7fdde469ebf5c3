package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/dealerstock/pkg/httpx"
	"github.com/ghuser/dealerstock/services/taxonomy/domain/models"
)

// NodeResponse is the wire shape of one taxonomy node at any level.
type NodeResponse struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
} // @name TaxonomyNodeResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"taxonomy node not found"`
} // @name TaxonomyErrorResponse

// CreateNodeRequest is the request body for all taxonomy create endpoints.
type CreateNodeRequest struct {
	Name string `json:"name" validate:"required,max=128" example:"Toyota"`
} // @name CreateNodeRequest

func manufacturerResponse(m *models.Manufacturer) NodeResponse {
	return NodeResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}

func categoryResponse(c *models.Category) NodeResponse {
	parent := c.ManufacturerID
	return NodeResponse{ID: c.ID, ParentID: &parent, Name: c.Name, CreatedAt: c.CreatedAt}
}

func trimResponse(t *models.TrimLevel) NodeResponse {
	parent := t.CategoryID
	return NodeResponse{ID: t.ID, ParentID: &parent, Name: t.Name, CreatedAt: t.CreatedAt}
}

// pathID parses a uuid URL parameter or writes a 400.
func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}
