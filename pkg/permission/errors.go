package permission

import "errors"

// Domain errors for catalog operations.
var (
	// ErrNotFound is returned when a permission id is not in the catalog.
	// Callers must treat it as a normal negative lookup, not a failure.
	ErrNotFound = errors.New("permission.not_found")

	// ErrDuplicatePermission is returned when a catalog is built with two
	// permissions sharing the same id.
	ErrDuplicatePermission = errors.New("permission.duplicate_id")

	// ErrInvalidPermission is returned when a permission definition is
	// missing required fields or carries an unknown category.
	ErrInvalidPermission = errors.New("permission.invalid_definition")
)
