package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/dealerstock/pkg/auth"
	"github.com/ghuser/dealerstock/pkg/httpx"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// VehicleResponse is the wire shape of one vehicle record.
type VehicleResponse struct {
	ID              uuid.UUID  `json:"id"`
	ChassisNumber   string     `json:"chassis_number"`
	Manufacturer    string     `json:"manufacturer"`
	Category        string     `json:"category"`
	TrimLevel       string     `json:"trim_level,omitempty"`
	EngineCapacity  string     `json:"engine_capacity,omitempty"`
	Year            int        `json:"year,omitempty"`
	ExteriorColor   string     `json:"exterior_color,omitempty"`
	InteriorColor   string     `json:"interior_color,omitempty"`
	ImportType      string     `json:"import_type,omitempty"`
	OwnershipType   string     `json:"ownership_type,omitempty"`
	Location        string     `json:"location,omitempty"`
	Status          string     `json:"status"`
	Sold            bool       `json:"sold"`
	Price           *float64   `json:"price,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	EntryDate       time.Time  `json:"entry_date"`
	SoldDate        *time.Time `json:"sold_date,omitempty"`
	BuyerName       string     `json:"buyer_name,omitempty"`
	SalePrice       *float64   `json:"sale_price,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty"`
	ReservedBy      string     `json:"reserved_by,omitempty"`
	ReservationNote string     `json:"reservation_note,omitempty"`
	ReservationDate *time.Time `json:"reservation_date,omitempty"`
} // @name VehicleResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"vehicle not found"`
} // @name ErrorResponse

func toVehicleResponse(v *models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID,
		ChassisNumber:   v.ChassisNumber,
		Manufacturer:    v.Manufacturer,
		Category:        v.Category,
		TrimLevel:       v.TrimLevel,
		EngineCapacity:  v.EngineCapacity,
		Year:            v.Year,
		ExteriorColor:   v.ExteriorColor,
		InteriorColor:   v.InteriorColor,
		ImportType:      v.ImportType,
		OwnershipType:   v.OwnershipType,
		Location:        v.Location,
		Status:          v.Status.String(),
		Sold:            v.Sold,
		Price:           v.Price,
		Notes:           v.Notes,
		EntryDate:       v.EntryDate,
		SoldDate:        v.SoldDate,
		BuyerName:       v.BuyerName,
		SalePrice:       v.SalePrice,
		PaymentMethod:   v.PaymentMethod,
		ReservedBy:      v.ReservedBy,
		ReservationNote: v.ReservationNote,
		ReservationDate: v.ReservationDate,
	}
}

func toVehicleResponses(vs []*models.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vs))
	for i, v := range vs {
		out[i] = toVehicleResponse(v)
	}
	return out
}

// identity pulls the authenticated identity or writes a 401.
func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return auth.Identity{}, false
	}
	return id, true
}

// vehicleID parses the {id} URL parameter or writes a 400.
func vehicleID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid vehicle id")
		return uuid.Nil, false
	}
	return id, true
}
