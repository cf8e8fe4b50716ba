package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// RedactedValue replaces the value of every secret attribute.
const RedactedValue = "[redacted]"

// Output formats accepted by NewHandler.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// secretKeys are attribute keys whose values are private key material. The
// handlers built by NewHandler blank them even when a caller passes the real
// value.
var secretKeys = map[string]struct{}{
	"private_exponent": {},
	"d":                {},
}

// IsSecret reports whether attributes under key are blanked on output.
func IsSecret(key string) bool {
	_, ok := secretKeys[key]
	return ok
}

// Logger is the logging surface the arithmetic and keygen packages depend on.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps logger. nil selects slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &sloggerAdapter{l: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// NewHandler builds a text or JSON slog handler writing to w at level. Secret
// attributes are replaced with RedactedValue before encoding.
func NewHandler(w io.Writer, level slog.Level, format string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redactSecrets}
	switch format {
	case "", FormatText:
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if IsSecret(a.Key) {
		return slog.String(a.Key, RedactedValue)
	}
	return a
}

// ParseLevel maps debug, info, warn and error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

type sloggerAdapter struct {
	l *slog.Logger
}

func (a *sloggerAdapter) Debug(ctx context.Context, msg string, args ...any) {
	a.l.DebugContext(ctx, msg, args...)
}

func (a *sloggerAdapter) Info(ctx context.Context, msg string, args ...any) {
	a.l.InfoContext(ctx, msg, args...)
}

func (a *sloggerAdapter) Warn(ctx context.Context, msg string, args ...any) {
	a.l.WarnContext(ctx, msg, args...)
}

func (a *sloggerAdapter) Error(ctx context.Context, msg string, args ...any) {
	a.l.ErrorContext(ctx, msg, args...)
}

func (a *sloggerAdapter) With(args ...any) Logger {
	return &sloggerAdapter{l: a.l.With(args...)}
}

// Redacted records that key was produced without logging its value. keygen
// uses it for the private exponent so the field is present in every
// "key derived" record.
func Redacted(key string) slog.Attr {
	return slog.String(key, RedactedValue)
}
