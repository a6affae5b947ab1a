package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the token.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session's deadline has passed. It is
	// distinct from any permission denial so the caller can prompt
	// re-authentication instead of rendering an access-denied state.
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionRevoked indicates the session was explicitly revoked.
	ErrSessionRevoked = errors.New("session.revoked")

	// ErrInvalidState indicates an operation that is not valid for the
	// session's current state, such as renewing a revoked session.
	ErrInvalidState = errors.New("session.invalid_state")

	// ErrUnverified indicates authentication was blocked because the actor
	// record is not verified yet.
	ErrUnverified = errors.New("session.unverified")

	// ErrUnknownActor indicates authentication was attempted without an
	// actor identity.
	ErrUnknownActor = errors.New("session.unknown_actor")

	// ErrInvalidSession indicates a malformed session was passed to a store.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates the session token could not be generated.
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
