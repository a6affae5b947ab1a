package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-process map. It keeps a secondary
// index from actor id to tokens so login supersession does not scan the
// whole table. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	byActor  map[string]map[string]struct{}
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		byActor:  make(map[string]map[string]struct{}),
	}
}

// Put stores or replaces a session snapshot keyed by token.
func (m *MemoryStore) Put(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, exists := m.sessions[sess.Token]; exists {
		m.unindex(prev)
	}
	cp := sess.Clone()
	m.sessions[cp.Token] = cp
	m.index(cp)
	return nil
}

// Get retrieves a session snapshot by token.
func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[token]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Delete removes a session by token.
func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, exists := m.sessions[token]; exists {
		m.unindex(sess)
		delete(m.sessions, token)
	}
	return nil
}

// DeleteByActorID removes every session bound to the actor.
func (m *MemoryStore) DeleteByActorID(ctx context.Context, actorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token := range m.byActor[actorID] {
		delete(m.sessions, token)
	}
	delete(m.byActor, actorID)
	return nil
}

// DeleteExpired removes sessions past their deadline and returns the reaped
// snapshots.
func (m *MemoryStore) DeleteExpired(ctx context.Context, now time.Time) ([]*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reaped []*Session
	for token, sess := range m.sessions {
		if now.Before(sess.ExpiresAt) {
			continue
		}
		reaped = append(reaped, sess.Clone())
		m.unindex(sess)
		delete(m.sessions, token)
	}
	return reaped, nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) index(sess *Session) {
	tokens, ok := m.byActor[sess.Actor.ID]
	if !ok {
		tokens = make(map[string]struct{})
		m.byActor[sess.Actor.ID] = tokens
	}
	tokens[sess.Token] = struct{}{}
}

func (m *MemoryStore) unindex(sess *Session) {
	tokens := m.byActor[sess.Actor.ID]
	delete(tokens, sess.Token)
	if len(tokens) == 0 {
		delete(m.byActor, sess.Actor.ID)
	}
}
