package handlers

import (
	"net/http"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
)

// UpdateVehicleRequest is the request body for PUT /inventory/{id}.
// Absent fields keep their stored value. Status is not editable here;
// lifecycle endpoints own status changes.
type UpdateVehicleRequest struct {
	ChassisNumber  *string  `json:"chassis_number" validate:"omitempty,min=3,max=64"`
	Manufacturer   *string  `json:"manufacturer" validate:"omitempty,max=128"`
	Category       *string  `json:"category" validate:"omitempty,max=128"`
	TrimLevel      *string  `json:"trim_level" validate:"omitempty,max=128"`
	EngineCapacity *string  `json:"engine_capacity" validate:"omitempty,max=32"`
	Year           *int     `json:"year" validate:"omitempty,gte=1950,lte=2100"`
	ExteriorColor  *string  `json:"exterior_color" validate:"omitempty,max=64"`
	InteriorColor  *string  `json:"interior_color" validate:"omitempty,max=64"`
	ImportType     *string  `json:"import_type" validate:"omitempty,max=64"`
	OwnershipType  *string  `json:"ownership_type" validate:"omitempty,max=64"`
	Location       *string  `json:"location" validate:"omitempty,max=128"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Notes          *string  `json:"notes" validate:"omitempty,max=4000"`
} // @name UpdateVehicleRequest

// PutVehicleHandler handles PUT /inventory/{id} requests.
type PutVehicleHandler struct {
	svc *appsvcs.Services
}

// NewPutVehicleHandler returns a PutVehicleHandler backed by the given services.
func NewPutVehicleHandler(svc *appsvcs.Services) *PutVehicleHandler {
	return &PutVehicleHandler{svc: svc}
}

// Execute applies a partial edit to a vehicle.
//
//	@Summary		Update vehicle
//	@Description	Merges the given fields into the record; the whole edit applies atomically
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Vehicle id"
//	@Param			request	body		UpdateVehicleRequest	true	"Fields to change"
//	@Success		200		{object}	VehicleResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/{id} [put]
func (h *PutVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateVehicleRequest](w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.Update(r.Context(), id, appsvcs.UpdateVehicleInput{
		ChassisNumber:  req.ChassisNumber,
		Manufacturer:   req.Manufacturer,
		Category:       req.Category,
		TrimLevel:      req.TrimLevel,
		EngineCapacity: req.EngineCapacity,
		Year:           req.Year,
		ExteriorColor:  req.ExteriorColor,
		InteriorColor:  req.InteriorColor,
		ImportType:     req.ImportType,
		OwnershipType:  req.OwnershipType,
		Location:       req.Location,
		Price:          req.Price,
		Notes:          req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVehicleResponse(v))
}

// DeleteVehicleHandler handles DELETE /inventory/{id} requests.
type DeleteVehicleHandler struct {
	svc *appsvcs.Services
}

// NewDeleteVehicleHandler returns a DeleteVehicleHandler backed by the given services.
func NewDeleteVehicleHandler(svc *appsvcs.Services) *DeleteVehicleHandler {
	return &DeleteVehicleHandler{svc: svc}
}

// Execute removes a vehicle permanently.
//
//	@Summary		Delete vehicle
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path	string	true	"Vehicle id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id} [delete]
func (h *DeleteVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Inventory.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
