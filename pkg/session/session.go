package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/careportal/accesskit/pkg/actor"
)

// Status describes the lifecycle state of a session at a given instant.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusRevoked Status = "revoked"
)

// Session is a time-bounded authorization context issued after successful
// authentication. The Actor is embedded by value: it is a snapshot taken at
// authentication time, so changes to the actor record elsewhere never reach
// a live session.
//
// A session mutates only through renewal (new ExpiresAt, bumped
// RenewalCount) and revocation; Expired and Revoked are terminal.
type Session struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`

	Actor actor.Actor `json:"actor"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Persistent selects the durable storage tier ("remember me"). It only
	// affects where the snapshot is stored, never expiry semantics.
	Persistent bool `json:"persistent"`

	RenewalCount int  `json:"renewal_count"`
	Revoked      bool `json:"revoked"`
}

// IsActive reports whether the session is usable at the given instant. It is
// the single source of truth for liveness: true iff the session is not
// revoked and IssuedAt <= now < ExpiresAt. The clock is a parameter so the
// check stays deterministic under test.
func (s *Session) IsActive(now time.Time) bool {
	if s == nil || s.Revoked {
		return false
	}
	return !now.Before(s.IssuedAt) && now.Before(s.ExpiresAt)
}

// Status returns the lifecycle state at the given instant.
func (s *Session) Status(now time.Time) Status {
	switch {
	case s == nil || s.Revoked:
		return StatusRevoked
	case !now.Before(s.ExpiresAt):
		return StatusExpired
	default:
		return StatusActive
	}
}

// Clone returns a deep copy of the session, so stores can hand out snapshots
// without sharing the actor's assignment slice.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Actor = s.Actor.Clone()
	return &out
}
