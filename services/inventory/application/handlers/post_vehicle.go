package handlers

import (
	"net/http"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
)

// CreateVehicleRequest is the request body for POST /inventory.
type CreateVehicleRequest struct {
	ChassisNumber  string   `json:"chassis_number" validate:"required,min=3,max=64" example:"JTDBR32E720059521"`
	Manufacturer   string   `json:"manufacturer" validate:"required,max=128" example:"Toyota"`
	Category       string   `json:"category" validate:"omitempty,max=128" example:"Camry"`
	TrimLevel      string   `json:"trim_level" validate:"omitempty,max=128" example:"SE"`
	EngineCapacity string   `json:"engine_capacity" validate:"omitempty,max=32" example:"2.5L"`
	Year           int      `json:"year" validate:"omitempty,gte=1950,lte=2100" example:"2024"`
	ExteriorColor  string   `json:"exterior_color" validate:"omitempty,max=64" example:"White"`
	InteriorColor  string   `json:"interior_color" validate:"omitempty,max=64" example:"Beige"`
	ImportType     string   `json:"import_type" validate:"omitempty,max=64" example:"gcc"`
	OwnershipType  string   `json:"ownership_type" validate:"omitempty,max=64" example:"dealer"`
	Location       string   `json:"location" validate:"omitempty,max=128" example:"Main showroom"`
	Status         string   `json:"status" validate:"omitempty,oneof=available in_transit maintenance reserved sold"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0" example:"95000"`
	Notes          string   `json:"notes" validate:"omitempty,max=4000"`
} // @name CreateVehicleRequest

// PostVehicleHandler handles POST /inventory requests.
type PostVehicleHandler struct {
	svc *appsvcs.Services
}

// NewPostVehicleHandler returns a PostVehicleHandler backed by the given services.
func NewPostVehicleHandler(svc *appsvcs.Services) *PostVehicleHandler {
	return &PostVehicleHandler{svc: svc}
}

// Execute adds a vehicle to the stock.
//
//	@Summary		Add vehicle
//	@Description	Registers a new vehicle unit; the chassis number must be unique
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateVehicleRequest	true	"New vehicle"
//	@Success		201		{object}	VehicleResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory [post]
func (h *PostVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateVehicleRequest](w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.Create(r.Context(), appsvcs.CreateVehicleInput{
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
		Status:         req.Status,
		Price:          req.Price,
		Notes:          req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toVehicleResponse(v))
}
