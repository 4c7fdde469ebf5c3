package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/dealerstock/pkg/httpx"
	"github.com/ghuser/dealerstock/pkg/logger"
)

const sessionName = "dealerstock_session"

const (
	sessionUserIDKey = "user_id"
	sessionRoleKey   = "role"
)

// RequireAuth is a chi middleware that enforces authentication via session
// cookies. It reads the session, extracts the user id and role, and injects
// them into the request context. Returns 401 if the session is missing,
// invalid, or lacks a valid identity.
//
// After this middleware, handlers can safely call auth.IdentityFromCtx.
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userIDStr, _ := session.Values[sessionUserIDKey].(string)
			roleStr, _ := session.Values[sessionRoleKey].(string)
			if userIDStr == "" || roleStr == "" {
				log.WarnContext(r.Context(), "session missing identity")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "user_id", userIDStr, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			role := Role(roleStr)
			if !role.IsValid() {
				log.WarnContext(r.Context(), "unknown role in session", "role", roleStr)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireMutator rejects requests whose role may not perform writes. Mount it
// inside RequireAuth on every mutating route group.
func RequireMutator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := IdentityFromCtx(r.Context())
		if err != nil {
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !id.Role.CanMutate() {
			httpx.JSONError(w, http.StatusForbidden, "role not permitted to modify inventory")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SaveIdentity writes the identity into the request's session. Called by the
// session endpoint once the upstream identity provider has vouched for the
// user; this package performs no credential verification itself.
func SaveIdentity(store sessions.Store, w http.ResponseWriter, r *http.Request, id Identity) error {
	session, err := store.Get(r, sessionName)
	if err != nil || session == nil {
		session, err = store.New(r, sessionName)
		if err != nil {
			return err
		}
	}
	session.Values[sessionUserIDKey] = id.UserID.String()
	session.Values[sessionRoleKey] = string(id.Role)
	return session.Save(r, w)
}

// ClearIdentity deletes the session (logout).
func ClearIdentity(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
