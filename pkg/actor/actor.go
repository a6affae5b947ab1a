package actor

import (
	"slices"
	"time"
)

// Canonical portal role ids. The role package registers a definition for each
// of these; an actor carrying any other role id gets the empty permission set.
const (
	RolePatient = "patient"
	RoleFamily  = "family"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Actor is the authenticated identity attached to a session. Sessions embed
// it by value, so the record an access check sees is a snapshot taken at
// authentication time and cannot go stale under it.
type Actor struct {
	ID string `json:"id"`
	// Role is a role id resolved against the role registry.
	Role string `json:"role"`
	// AssignedResourceIDs lists resources linked to the actor, such as the
	// patient ids a family member is authorized for.
	AssignedResourceIDs []string  `json:"assigned_resource_ids,omitempty"`
	Verified            bool      `json:"verified"`
	CreatedAt           time.Time `json:"created_at,omitzero"`
}

// IsZero reports whether the actor is the zero value, i.e. no authenticated
// identity.
func (a Actor) IsZero() bool {
	return a.ID == ""
}

// HasAssignedResource reports whether the given resource id is linked to the
// actor.
func (a Actor) HasAssignedResource(resourceID string) bool {
	if resourceID == "" {
		return false
	}
	return slices.Contains(a.AssignedResourceIDs, resourceID)
}

// Clone returns a deep copy of the actor, so that stores can hand out
// snapshots without sharing the assignment slice.
func (a Actor) Clone() Actor {
	out := a
	if a.AssignedResourceIDs != nil {
		out.AssignedResourceIDs = slices.Clone(a.AssignedResourceIDs)
	}
	return out
}
