package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Role is the caller's authorization level, carried in the session. The core
// assumes identity is already authenticated upstream; the role only gates
// what the request may do here.
type Role string

const (
	// RoleAdmin may do anything, including user management.
	RoleAdmin Role = "admin"
	// RoleManager may mutate inventory and taxonomy data.
	RoleManager Role = "manager"
	// RoleViewer has read access only, and is denied visibility of
	// internal-use vehicles.
	RoleViewer Role = "viewer"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// CanMutate reports whether the role may perform write operations.
func (r Role) CanMutate() bool {
	return r == RoleAdmin || r == RoleManager
}

// SeesInternalStock reports whether the role may see internal-use vehicles
// in list, search, filter, and stats reads.
func (r Role) SeesInternalStock() bool {
	return r == RoleAdmin || r == RoleManager
}

// Identity is the authenticated principal attached to the request context.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrIdentityNotFound is returned when no Identity exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrIdentityNotFound = errors.New("identity not found in context")

// IdentityFromCtx extracts the authenticated identity from the request
// context. Returns ErrIdentityNotFound for unauthenticated requests.
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == uuid.Nil || !id.Role.IsValid() {
		return Identity{}, ErrIdentityNotFound
	}
	return id, nil
}

// WithIdentity returns a new context with the identity attached. Used by the
// authentication middleware after validating the session.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
