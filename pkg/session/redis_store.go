package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "accesskit:session:"

	// Retention keeps snapshots readable for a while past their deadline so
	// an access attempt on an expired session can still be reported as
	// "expired" rather than "not found". Persistent sessions get the longer
	// tier.
	defaultRetention           = time.Hour
	defaultPersistentRetention = 30 * 24 * time.Hour
)

// RedisStore implements Store on top of a Redis server. Snapshots are JSON
// values keyed by token with a TTL aligned to the session deadline plus a
// retention grace; a per-actor set indexes tokens for login supersession.
type RedisStore struct {
	client              redis.UniversalClient
	prefix              string
	retention           time.Duration
	persistentRetention time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix overrides the key namespace (default "accesskit:session:").
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRetention overrides how long snapshots stay readable past expiry, per
// storage tier.
func WithRetention(ephemeral, persistent time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ephemeral > 0 {
			s.retention = ephemeral
		}
		if persistent > 0 {
			s.persistentRetention = persistent
		}
	}
}

// NewRedisStore creates a session store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:              client,
		prefix:              defaultKeyPrefix,
		retention:           defaultRetention,
		persistentRetention: defaultPersistentRetention,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisStore) actorKey(actorID string) string {
	return s.prefix + "actor:" + actorID
}

func (s *RedisStore) ttl(sess *Session) time.Duration {
	retention := s.retention
	if sess.Persistent {
		retention = s.persistentRetention
	}
	ttl := time.Until(sess.ExpiresAt) + retention
	if ttl < retention {
		ttl = retention
	}
	return ttl
}

// Put stores or replaces a session snapshot keyed by token.
func (s *RedisStore) Put(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	ttl := s.ttl(sess)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(sess.Token), data, ttl)
	pipe.SAdd(ctx, s.actorKey(sess.Actor.ID), sess.Token)
	pipe.Expire(ctx, s.actorKey(sess.Actor.ID), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves a session snapshot by token.
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	return &sess, nil
}

// Delete removes a session by token.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	sess, err := s.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(token))
	pipe.SRem(ctx, s.actorKey(sess.Actor.ID), token)
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteByActorID removes every session bound to the actor.
func (s *RedisStore) DeleteByActorID(ctx context.Context, actorID string) error {
	tokens, err := s.client.SMembers(ctx, s.actorKey(actorID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, s.key(token))
	}
	pipe.Del(ctx, s.actorKey(actorID))
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteExpired scans the namespace and removes sessions past their deadline,
// returning the reaped snapshots. Redis drops unread snapshots on its own via
// TTL; the scan exists so the manager can fire expiry callbacks promptly.
func (s *RedisStore) DeleteExpired(ctx context.Context, now time.Time) ([]*Session, error) {
	var (
		reaped []*Session
		cursor uint64
	)
	indexPrefix := s.prefix + "actor:"

	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return reaped, err
		}

		for _, key := range keys {
			if strings.HasPrefix(key, indexPrefix) {
				continue
			}
			sess, err := s.Get(ctx, strings.TrimPrefix(key, s.prefix))
			if err != nil {
				continue
			}
			if now.Before(sess.ExpiresAt) {
				continue
			}
			if err := s.Delete(ctx, sess.Token); err != nil {
				return reaped, err
			}
			reaped = append(reaped, sess)
		}

		cursor = next
		if cursor == 0 {
			return reaped, nil
		}
	}
}
