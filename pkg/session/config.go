package session

import "time"

// Config holds session lifecycle settings.
type Config struct {
	// Duration is the fixed session lifetime applied at issue and on every
	// renewal (default: 30m).
	Duration time.Duration `env:"SESSION_DURATION" envDefault:"30m"`

	// SweepInterval controls the background expiry sweep (0 disables it and
	// leaves expiry to lazy detection on access).
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Duration:      30 * time.Minute,
		SweepInterval: time.Minute,
	}
}
