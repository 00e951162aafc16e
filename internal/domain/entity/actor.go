package entity

import "github.com/google/uuid"

// Actor is the authenticated identity making a request. It is built by the
// auth middleware from token claims and passed explicitly into every mutating
// operation; there is no ambient "current user" lookup anywhere else.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin reports whether the actor holds the platform administrator role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanMutate reports whether the actor may modify a resource owned by ownerID.
// Owners may mutate their own resources; admins may mutate anything.
func (a Actor) CanMutate(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsAdmin()
}

// HasRole reports whether the actor holds the given role.
func (a Actor) HasRole(role Role) bool {
	return a.Role == role
}
