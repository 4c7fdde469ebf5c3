package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/dealerstock/pkg/httpx"
	"github.com/ghuser/dealerstock/pkg/logger"
	pkgvalidator "github.com/ghuser/dealerstock/pkg/validator"
)

// CreateSessionRequest is the request body for POST /auth/session. The
// caller is the deployment's identity provider or gateway; this service
// trusts the asserted identity and only manages the session cookie.
type CreateSessionRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Role   string `json:"role" validate:"required,oneof=admin manager viewer"`
} // @name CreateSessionRequest

// SessionResponse echoes the identity the session was established for.
type SessionResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
} // @name SessionResponse

// SessionRoutes registers the session establish/teardown endpoints.
func SessionRoutes(r chi.Router, store sessions.Store, log logger.Logger) {
	r.Post("/auth/session", createSession(store, log))
	r.Delete("/auth/session", deleteSession(store, log))
}

// createSession writes the asserted identity into a session cookie.
//
//	@Summary		Establish session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSessionRequest	true	"Asserted identity"
//	@Success		201		{object}	SessionResponse
//	@Failure		422		{object}	map[string]string
//	@Router			/auth/session [post]
func createSession(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := pkgvalidator.ValidateRequest[CreateSessionRequest](w, r)
		if !ok {
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "user_id must be a uuid")
			return
		}
		id := Identity{UserID: userID, Role: Role(req.Role)}
		if err := SaveIdentity(store, w, r, id); err != nil {
			log.ErrorContext(r.Context(), "failed to save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "failed to establish session")
			return
		}
		httpx.JSON(w, http.StatusCreated, SessionResponse{UserID: id.UserID, Role: string(id.Role)})
	}
}

// deleteSession tears the session down (logout).
//
//	@Summary		End session
//	@Tags			auth
//	@Success		204
//	@Router			/auth/session [delete]
func deleteSession(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ClearIdentity(store, w, r); err != nil {
			log.WarnContext(r.Context(), "failed to clear session", "error", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
