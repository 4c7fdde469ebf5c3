package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/dealerstock/pkg/errhttp"
	"github.com/ghuser/dealerstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
	appsvcs "github.com/ghuser/dealerstock/services/inventory/application/services"
	"github.com/ghuser/dealerstock/services/inventory/domain/models"
)

// ReserveVehicleRequest is the request body for POST /inventory/{id}/reserve.
type ReserveVehicleRequest struct {
	ReservedBy string `json:"reserved_by" validate:"required,max=128" example:"Ahmed Al-Rashid"`
	Note       string `json:"note" validate:"omitempty,max=1000"`
} // @name ReserveVehicleRequest

// ReserveVehicleHandler handles POST /inventory/{id}/reserve requests.
type ReserveVehicleHandler struct {
	svc *appsvcs.Services
}

// NewReserveVehicleHandler returns a ReserveVehicleHandler backed by the given services.
func NewReserveVehicleHandler(svc *appsvcs.Services) *ReserveVehicleHandler {
	return &ReserveVehicleHandler{svc: svc}
}

// Execute places a hold on a vehicle for a named customer.
//
//	@Summary		Reserve vehicle
//	@Tags			lifecycle
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Vehicle id"
//	@Param			request	body		ReserveVehicleRequest	true	"Reservation details"
//	@Success		200		{object}	VehicleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/{id}/reserve [post]
func (h *ReserveVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ReserveVehicleRequest](w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.Reserve(r.Context(), id, req.ReservedBy, req.Note)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVehicleResponse(v))
}

// CancelReservationHandler handles POST /inventory/{id}/reserve/cancel requests.
type CancelReservationHandler struct {
	svc *appsvcs.Services
}

// NewCancelReservationHandler returns a CancelReservationHandler backed by the given services.
func NewCancelReservationHandler(svc *appsvcs.Services) *CancelReservationHandler {
	return &CancelReservationHandler{svc: svc}
}

// Execute releases a reservation and returns the vehicle to available.
//
//	@Summary		Cancel reservation
//	@Tags			lifecycle
//	@Produce		json
//	@Param			id	path		string	true	"Vehicle id"
//	@Success		200	{object}	VehicleResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id}/reserve/cancel [post]
func (h *CancelReservationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.CancelReservation(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVehicleResponse(v))
}

// SellVehicleRequest is the request body for POST /inventory/{id}/sell.
type SellVehicleRequest struct {
	BuyerName     string   `json:"buyer_name" validate:"required,max=128" example:"Fatima Hassan"`
	SalePrice     *float64 `json:"sale_price" validate:"omitempty,gte=0" example:"92500"`
	PaymentMethod string   `json:"payment_method" validate:"omitempty,max=64" example:"bank_transfer"`
} // @name SellVehicleRequest

// SellVehicleHandler handles POST /inventory/{id}/sell requests.
type SellVehicleHandler struct {
	svc *appsvcs.Services
}

// NewSellVehicleHandler returns a SellVehicleHandler backed by the given services.
func NewSellVehicleHandler(svc *appsvcs.Services) *SellVehicleHandler {
	return &SellVehicleHandler{svc: svc}
}

// Execute marks a vehicle sold and records the sale details. Selling an
// already-sold vehicle fails with 400.
//
//	@Summary		Sell vehicle
//	@Tags			lifecycle
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Vehicle id"
//	@Param			request	body		SellVehicleRequest	true	"Sale details"
//	@Success		200		{object}	VehicleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/{id}/sell [post]
func (h *SellVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SellVehicleRequest](w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.Sell(r.Context(), id, models.SaleDetails{
		BuyerName:     req.BuyerName,
		SalePrice:     req.SalePrice,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVehicleResponse(v))
}

// TransferVehicleRequest is the request body for POST /inventory/{id}/transfer.
type TransferVehicleRequest struct {
	NewLocation string `json:"new_location" validate:"required,max=128" example:"Airport Road branch"`
	Reason      string `json:"reason" validate:"omitempty,max=1000" example:"showroom rotation"`
} // @name TransferVehicleRequest

// TransferVehicleHandler handles POST /inventory/{id}/transfer requests.
type TransferVehicleHandler struct {
	svc *appsvcs.Services
}

// NewTransferVehicleHandler returns a TransferVehicleHandler backed by the given services.
func NewTransferVehicleHandler(svc *appsvcs.Services) *TransferVehicleHandler {
	return &TransferVehicleHandler{svc: svc}
}

// Execute moves a vehicle to a new location and appends the audit record.
// The acting user from the session is recorded as the transferring party.
//
//	@Summary		Transfer vehicle
//	@Tags			lifecycle
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Vehicle id"
//	@Param			request	body		TransferVehicleRequest	true	"Destination and reason"
//	@Success		200		{object}	VehicleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/{id}/transfer [post]
func (h *TransferVehicleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[TransferVehicleRequest](w, r)
	if !ok {
		return
	}

	v, err := h.svc.Inventory.Transfer(r.Context(), id, req.NewLocation, req.Reason, ident.UserID.String())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toVehicleResponse(v))
}

// TransferResponse is the wire shape of one movement-history entry.
type TransferResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	FromLocation  string    `json:"from_location"`
	ToLocation    string    `json:"to_location"`
	Reason        string    `json:"reason,omitempty"`
	TransferredBy string    `json:"transferred_by"`
	TransferredAt time.Time `json:"transferred_at"`
} // @name TransferResponse

// ListTransfersHandler handles GET /inventory/{id}/transfers requests.
type ListTransfersHandler struct {
	svc *appsvcs.Services
}

// NewListTransfersHandler returns a ListTransfersHandler backed by the given services.
func NewListTransfersHandler(svc *appsvcs.Services) *ListTransfersHandler {
	return &ListTransfersHandler{svc: svc}
}

// Execute returns a vehicle's movement history, oldest first.
//
//	@Summary		List transfers
//	@Tags			lifecycle
//	@Produce		json
//	@Param			id	path		string	true	"Vehicle id"
//	@Success		200	{array}		TransferResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/{id}/transfers [get]
func (h *ListTransfersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	id, ok := vehicleID(w, r)
	if !ok {
		return
	}

	recs, err := h.svc.Inventory.ListTransfers(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]TransferResponse, len(recs))
	for i, rec := range recs {
		out[i] = TransferResponse{
			ID:            rec.ID,
			VehicleID:     rec.VehicleID,
			FromLocation:  rec.FromLocation,
			ToLocation:    rec.ToLocation,
			Reason:        rec.Reason,
			TransferredBy: rec.TransferredBy,
			TransferredAt: rec.TransferredAt,
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}
