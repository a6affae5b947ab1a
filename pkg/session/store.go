package session

import (
	"context"
	"time"
)

// Store is the key-value persistence boundary for session snapshots. The
// manager is agnostic to the backing medium; any store satisfying this
// interface can be plugged in. Stores never judge expiry themselves — the
// manager owns the clock — except for DeleteExpired, which receives the
// instant to sweep against.
type Store interface {
	// Put stores or replaces a session snapshot keyed by token.
	Put(ctx context.Context, sess *Session) error

	// Get retrieves a session snapshot by token. Unknown tokens return
	// ErrSessionNotFound.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes a session by token. Deleting an absent token is a
	// no-op.
	Delete(ctx context.Context, token string) error

	// DeleteByActorID removes every session bound to the actor. Used to
	// supersede a prior login for the same slot.
	DeleteByActorID(ctx context.Context, actorID string) error

	// DeleteExpired removes sessions whose deadline has passed at the given
	// instant and returns the reaped snapshots so the manager can notify
	// expiry callbacks.
	DeleteExpired(ctx context.Context, now time.Time) ([]*Session, error)
}
