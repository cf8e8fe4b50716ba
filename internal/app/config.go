package app

import (
	"fmt"
	"io"
	"time"

	"rsacore/internal/arith"
	"rsacore/internal/domain"
	"rsacore/internal/logging"
	"rsacore/internal/protocol/rsa"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Rounds    int           // Miller-Rabin rounds per candidate
	Timeout   time.Duration // whole-run bound for key generation; 0 means none
	Seed      string        // non-empty selects a reproducible witness stream
	Strategy  string        // "linear" or "euclid"
	Mode      string        // "signature" or "confidentiality"
	LogLevel  string        // debug, info, warn, error
	LogFormat string        // text or json
	LogOutput io.Writer     // optional; defaults to io.Discard
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Rounds:    arith.DefaultRounds,
		Strategy:  string(rsa.LinearSearch),
		Mode:      string(rsa.ModeSignature),
		LogLevel:  "info",
		LogFormat: logging.FormatText,
	}
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds %d < 1", domain.ErrInvalidRounds, c.Rounds)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", domain.ErrInvalidArgument, c.Timeout)
	}
	if _, err := rsa.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := rsa.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("%w: unknown log format %q", domain.ErrInvalidArgument, c.LogFormat)
	}
	return nil
}
