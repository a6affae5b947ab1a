package access

import "errors"

var (
	// ErrNoSession indicates a check was made without a session.
	ErrNoSession = errors.New("access.no_session")

	// ErrPermissionDenied is the universal negative decision. Explain
	// methods wrap it with the missing capability so the UI can name what
	// the actor lacks.
	ErrPermissionDenied = errors.New("access.permission_denied")
)
