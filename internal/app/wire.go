package app

import (
	"io"
	"log/slog"

	"rsacore/internal/arith"
	"rsacore/internal/domain"
	"rsacore/internal/logging"
	"rsacore/internal/protocol/rsa"
	keygensvc "rsacore/internal/services/keygen"
)

// Wire bundles the components the CLI commands use.
type Wire struct {
	Logger  logging.Logger
	Random  domain.RandomSource
	Tester  domain.PrimalityTester
	Deriver domain.KeyDeriver
	Keys    domain.KeyService
	Mode    rsa.Mode
	Rounds  int
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := rsa.ParseStrategy(cfg.Strategy)
	mode, _ := rsa.ParseMode(cfg.Mode)
	level, _ := logging.ParseLevel(cfg.LogLevel)

	// Logging
	out := cfg.LogOutput
	if out == nil {
		out = io.Discard
	}
	handler, err := logging.NewHandler(out, level, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	logger := logging.New(slog.New(handler))

	// Witness source
	var rng domain.RandomSource = arith.SystemSource()
	if cfg.Seed != "" {
		seeded, err := arith.NewSeededSource([]byte(cfg.Seed))
		if err != nil {
			return nil, err
		}
		rng = seeded
	}

	// Arithmetic and services
	tester := arith.NewTester(cfg.Rounds, rng)
	deriver := rsa.NewDeriver(strategy, logger.With("component", "deriver"))
	keys := keygensvc.New(tester, deriver, logger.With("component", "keygen"), cfg.Timeout)

	return &Wire{
		Logger:  logger,
		Random:  rng,
		Tester:  tester,
		Deriver: deriver,
		Keys:    keys,
		Mode:    mode,
		Rounds:  cfg.Rounds,
	}, nil
}
