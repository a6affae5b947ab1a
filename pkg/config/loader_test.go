package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/accesskit/pkg/config"
	"github.com/careportal/accesskit/pkg/session"
)

type testConfig struct {
	Name    string        `env:"TEST_APP_NAME" envDefault:"accesskit"`
	Timeout time.Duration `env:"TEST_APP_TIMEOUT" envDefault:"15s"`
	Debug   bool          `env:"TEST_APP_DEBUG" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "accesskit", cfg.Name)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
		assert.False(t, cfg.Debug)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_APP_NAME", "portal")
		t.Setenv("TEST_APP_TIMEOUT", "1m")
		t.Setenv("TEST_APP_DEBUG", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "portal", cfg.Name)
		assert.Equal(t, time.Minute, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("nil target rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilConfig)
	})

	t.Run("malformed value surfaces parse error", func(t *testing.T) {
		t.Setenv("TEST_APP_TIMEOUT", "not-a-duration")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingFailed)
	})
}

func TestLoad_SessionConfig(t *testing.T) {
	t.Run("defaults match the session package", func(t *testing.T) {
		var cfg session.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, session.DefaultConfig(), cfg)
	})

	t.Run("duration from environment", func(t *testing.T) {
		t.Setenv("SESSION_DURATION", "45m")
		t.Setenv("SESSION_SWEEP_INTERVAL", "30s")

		var cfg session.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 45*time.Minute, cfg.Duration)
		assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	})
}
