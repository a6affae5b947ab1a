package role

import "errors"

// Domain errors for registry operations.
var (
	// ErrRoleNotFound is returned when a role id is not registered.
	ErrRoleNotFound = errors.New("role.not_found")

	// ErrDuplicateRole is returned when registering a role id twice.
	ErrDuplicateRole = errors.New("role.duplicate_id")

	// ErrInvalidConfig is returned when a role definition fails validation.
	ErrInvalidConfig = errors.New("role.invalid_config")

	// ErrUnknownPermission is returned when a role references a permission
	// id that is not in the catalog.
	ErrUnknownPermission = errors.New("role.unknown_permission")
)
