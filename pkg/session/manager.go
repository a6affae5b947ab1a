package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careportal/accesskit/pkg/actor"
)

// Manager owns the session lifecycle: it issues sessions for verified actor
// records, renews and revokes them, and sweeps expired ones in the
// background. State transitions are serialized under one mutex so a renewal
// cannot race a concurrent revoke into a lost update; reads go straight to
// the store against a snapshot.
type Manager struct {
	store    Store
	config   Config
	clock    func() time.Time
	log      *slog.Logger
	onExpire func(*Session)

	// mu serializes Authenticate/Renew/Revoke/Logout.
	mu sync.Mutex

	done      chan struct{}
	closeOnce sync.Once
}

// NewManager creates a session manager. With no options it uses an in-memory
// store, the default configuration, the wall clock and a discard logger.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		clock:  time.Now,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	if m.config.SweepInterval > 0 {
		go m.sweepLoop()
	}

	return m
}

// Authenticate issues a new session for an already-verified actor record.
// Credential verification happens upstream; this core only receives the
// resolved identity. Any prior session for the same actor is superseded, so
// at most one active session exists per login slot. The commit is
// all-or-nothing: a cancelled context leaves no partial state.
func (m *Manager) Authenticate(ctx context.Context, rec actor.Actor, persistent bool) (*Session, error) {
	if rec.IsZero() {
		return nil, ErrUnknownActor
	}
	if !rec.Verified {
		return nil, ErrUnverified
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.clock()
	sess := &Session{
		ID:         uuid.New(),
		Token:      token,
		Actor:      rec.Clone(),
		IssuedAt:   now,
		ExpiresAt:  now.Add(m.config.Duration),
		Persistent: persistent,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.store.DeleteByActorID(ctx, rec.ID); err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	m.log.InfoContext(ctx, "session issued",
		slog.String("session_id", sess.ID.String()),
		slog.String("actor_id", rec.ID),
		slog.String("role", rec.Role),
		slog.Bool("persistent", persistent),
		slog.Time("expires_at", sess.ExpiresAt),
	)
	return sess.Clone(), nil
}

// Get retrieves the session for the token, detecting expiry lazily. Expired
// sessions surface ErrSessionExpired and revoked ones ErrSessionRevoked,
// both distinct from ErrSessionNotFound, so the caller can tell "please
// re-authenticate" apart from "no such session".
func (m *Manager) Get(ctx context.Context, token string) (*Session, error) {
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	now := m.clock()
	switch sess.Status(now) {
	case StatusRevoked:
		return nil, ErrSessionRevoked
	case StatusExpired:
		return nil, ErrSessionExpired
	}
	return sess, nil
}

// Renew pushes the session deadline out to now plus the configured duration
// and increments the renewal count. Only an active session can renew;
// calling on an expired or revoked one is a no-op signaling ErrInvalidState.
// ExpiresAt never decreases.
func (m *Manager) Renew(ctx context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	now := m.clock()
	if !sess.IsActive(now) {
		switch sess.Status(now) {
		case StatusRevoked:
			return nil, errors.Join(ErrInvalidState, ErrSessionRevoked)
		default:
			return nil, errors.Join(ErrInvalidState, ErrSessionExpired)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if next := now.Add(m.config.Duration); next.After(sess.ExpiresAt) {
		sess.ExpiresAt = next
	}
	sess.RenewalCount++

	if err := m.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	m.log.DebugContext(ctx, "session renewed",
		slog.String("session_id", sess.ID.String()),
		slog.Int("renewal_count", sess.RenewalCount),
		slog.Time("expires_at", sess.ExpiresAt),
	)
	return sess.Clone(), nil
}

// Revoke moves the session to its terminal revoked state regardless of the
// current one. It is idempotent: revoking twice, or revoking an unknown
// token, succeeds without effect.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	if sess.Revoked {
		return nil
	}

	sess.Revoked = true
	if err := m.store.Put(ctx, sess); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "session revoked",
		slog.String("session_id", sess.ID.String()),
		slog.String("actor_id", sess.Actor.ID),
	)
	return nil
}

// Logout revokes the session and destroys its stored snapshot. Idempotent.
func (m *Manager) Logout(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Delete(ctx, token)
}

// Close stops the background sweep. Safe to call multiple times.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}

// sweepLoop periodically reaps expired sessions and fires the expiry
// callback for each. The sweep gives no ordering guarantee relative to
// individual access checks beyond what lazy detection already provides.
func (m *Manager) sweepLoop() {
	ticker := time.NewTicker(m.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.done:
			return
		}
	}
}

func (m *Manager) sweep() {
	ctx := context.Background()
	reaped, err := m.store.DeleteExpired(ctx, m.clock())
	if err != nil {
		m.log.ErrorContext(ctx, "session sweep failed", slog.Any("error", err))
		return
	}

	for _, sess := range reaped {
		m.log.DebugContext(ctx, "session expired",
			slog.String("session_id", sess.ID.String()),
			slog.String("actor_id", sess.Actor.ID),
		)
		if m.onExpire != nil && !sess.Revoked {
			m.onExpire(sess)
		}
	}
}

// generateToken creates an opaque, cryptographically random session token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
