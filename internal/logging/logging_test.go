package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"rsacore/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestJSONHandler_RedactsAndFilters(t *testing.T) {
	var buf bytes.Buffer
	h, err := logging.NewHandler(&buf, slog.LevelInfo, logging.FormatJSON)
	require.NoError(t, err)
	logger := logging.New(slog.New(h)).With("component", "test")

	ctx := context.Background()
	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "key derived", logging.Redacted("d"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "key derived", rec["msg"])
	require.Equal(t, "test", rec["component"])
	require.Equal(t, logging.RedactedValue, rec["d"])
}

func TestHandler_BlanksSecretKeys(t *testing.T) {
	for _, format := range []string{logging.FormatText, logging.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			h, err := logging.NewHandler(&buf, slog.LevelDebug, format)
			require.NoError(t, err)
			logger := logging.New(slog.New(h))

			logger.Info(context.Background(), "key derived", "modulus", "3233", "private_exponent", "d-value")
			logger.With("d", "d-value").Debug(context.Background(), "scoped")

			out := buf.String()
			require.NotContains(t, out, "d-value")
			require.Contains(t, out, "3233")
			require.Contains(t, out, logging.RedactedValue)
		})
	}
}

func TestIsSecret(t *testing.T) {
	require.True(t, logging.IsSecret("private_exponent"))
	require.True(t, logging.IsSecret("d"))
	require.False(t, logging.IsSecret("modulus"))
}

func TestNewHandler_UnknownFormat(t *testing.T) {
	_, err := logging.NewHandler(&bytes.Buffer{}, slog.LevelInfo, "xml")
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		logging.Discard().With("k", "v").Error(context.Background(), "dropped")
	})
}
