package session

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets the session store (default: in-memory).
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithConfig sets the session configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		if cfg.Duration > 0 {
			m.config = cfg
		}
	}
}

// WithClock injects the time source used for issue, renewal and expiry
// decisions. Tests use a fixed or stepped clock to make expiry
// deterministic.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithLogger sets the logger for lifecycle events (default: discard).
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithExpiryCallback registers a callback fired once per session reaped by
// the background sweep, so the caller can react (e.g. force a re-login
// prompt). The callback runs on the sweep goroutine and must not block.
func WithExpiryCallback(fn func(*Session)) Option {
	return func(m *Manager) {
		m.onExpire = fn
	}
}
