package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	invdomain "github.com/ghuser/dealerstock/services/inventory/domain"
	taxdomain "github.com/ghuser/dealerstock/services/taxonomy/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrVehicleNotFound", invdomain.ErrVehicleNotFound, http.StatusNotFound},
		{"ErrChassisExists", invdomain.ErrChassisExists, http.StatusConflict},
		{"ErrInvalidVehicle", invdomain.ErrInvalidVehicle, http.StatusUnprocessableEntity},
		{"ErrInvalidTransition", invdomain.ErrInvalidTransition, http.StatusBadRequest},
		{"ErrNodeNotFound", taxdomain.ErrNodeNotFound, http.StatusNotFound},
		{"ErrDuplicateName", taxdomain.ErrDuplicateName, http.StatusConflict},
		{"ErrNodeInUse", taxdomain.ErrNodeInUse, http.StatusConflict},
		{"ErrInvalidNode", taxdomain.ErrInvalidNode, http.StatusUnprocessableEntity},
		{"wrapped ErrVehicleNotFound", fmt.Errorf("get vehicle: %w", invdomain.ErrVehicleNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidTransition", fmt.Errorf("%w: vehicle already sold", invdomain.ErrInvalidTransition), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, invdomain.ErrVehicleNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, invdomain.ErrVehicleNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
