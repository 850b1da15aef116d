package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggingWithOptions_JSON(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "depcheck",
		JSON:      true,
		MinLevel:  slog.LevelInfo,
		Output:    &buf,
	})

	Get().Info("accepted", "kind", "digits")
	Get().Debug("dropped below min level")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

	assert.Equal(t, "accepted", line["msg"])
	assert.Equal(t, "digits", line["kind"])
	assert.Equal(t, "depcheck", line["subsystem"])
}

func TestGet_Subsystem(t *testing.T) { //nolint:paralleltest
	ConfigureLoggingWithOptions(Options{Subsystem: "default", Output: &bytes.Buffer{}})

	assert.Equal(t, "default", GetSubsystem(context.Background()))
	assert.Equal(t, "catalog", GetSubsystem(WithSubsystem(t.Context(), "catalog")))
}

func TestGet_Muted(t *testing.T) {
	t.Parallel()

	ctx := WithMuted(t.Context(), true)

	assert.False(t, Get(ctx).Enabled(ctx, slog.LevelError))

	ctx = WithMuted(ctx, false)
	ctx = WithLogger(ctx, slogt.New(t))

	assert.True(t, Get(ctx).Enabled(ctx, slog.LevelError))
}

func TestGet_AttachedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	attached := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithSubsystem(WithLogger(t.Context(), attached), "registry")

	Get(nil, ctx).Warn("no adapter") //nolint:staticcheck

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "registry", line["subsystem"])
	assert.Equal(t, "WARN", line["level"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, errors.ErrValidation)
}
