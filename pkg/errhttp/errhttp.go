// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/dealerstock/pkg/httpx"
	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	taxdomain "github.com/ghuser/dealerstock/services/taxonomy/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrVehicleNotFound),
		errors.Is(err, taxdomain.ErrNodeNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrChassisExists),
		errors.Is(err, taxdomain.ErrDuplicateName),
		errors.Is(err, taxdomain.ErrNodeInUse):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrInvalidTransition):
		return http.StatusBadRequest // 400 — lifecycle precondition failed
	case errors.Is(err, invdomain.ErrInvalidVehicle),
		errors.Is(err, taxdomain.ErrInvalidNode):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
