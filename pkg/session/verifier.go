package session

import (
	"context"

	"github.com/careportal/accesskit/pkg/actor"
)

// Verifier resolves credentials to actor records. It is implemented by the
// external credential service; this core never sees how secrets are stored
// or compared, only the resolved identity and its verified flag.
type Verifier interface {
	VerifyCredentials(ctx context.Context, identifier, secret string) (actor.Actor, error)
}

// Login verifies credentials through the external verifier and issues a
// session for the resolved actor. Verification failures pass through
// unchanged; an unverified record fails with ErrUnverified.
func (m *Manager) Login(ctx context.Context, v Verifier, identifier, secret string, persistent bool) (*Session, error) {
	rec, err := v.VerifyCredentials(ctx, identifier, secret)
	if err != nil {
		return nil, err
	}
	return m.Authenticate(ctx, rec, persistent)
}
