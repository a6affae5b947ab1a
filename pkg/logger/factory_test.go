package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/accesskit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("json format emits structured records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("session issued", slog.String("actor_id", "P1"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "session issued", record["msg"])
		assert.Equal(t, "P1", record["actor_id"])
	})

	t.Run("text format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("access denied")
		assert.Contains(t, buf.String(), "msg=\"access denied\"")
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("static attributes attach to every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttrs(slog.String("component", "session")),
		)

		log.Info("one")
		log.Info("two")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Contains(t, line, `"component":"session"`)
		}
	})

	t.Run("invalid format panics at startup", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewFromConfig(
		logger.Config{Level: "debug", Format: logger.FormatText},
		logger.WithOutput(&buf),
	)

	log.Debug("visible at debug level")
	assert.Contains(t, buf.String(), "visible at debug level")

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Level: "chatty", Format: logger.FormatText},
			logger.WithOutput(&buf),
		)

		log.Debug("hidden")
		log.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
