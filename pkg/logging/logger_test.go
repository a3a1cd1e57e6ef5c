package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/ftlsave/pkg/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, config.Logging{Level: "warn", Format: "text"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("save decoded", "path", "continue.sav", "format", 11)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"save decoded\"")
	assert.Contains(t, out, "path=continue.sav")
	assert.Contains(t, out, "format=11")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, config.Logging{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger.Debug("read", "bytes", 42)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "read", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, float64(42), record["bytes"])
	assert.Contains(t, record, "time")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, config.Logging{Level: "info", Format: "xml"})
	assert.Error(t, err)

	_, err = New(config.Logging{Level: "loud"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
