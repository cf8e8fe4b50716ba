// Package logging provides the structured logging facade used across rsacore.
//
// Components take a Logger so tests can pass Discard() and the CLI can choose
// a text or JSON handler:
//
//	h, _ := logging.NewHandler(os.Stderr, slog.LevelInfo, logging.FormatText)
//	logger := logging.New(slog.New(h))
//	logger.Info(ctx, "prime accepted", "role", "p", "value", p)
//
// # Security Considerations
//
// Private exponents are never logged. Handlers from NewHandler blank the
// private_exponent and d keys on output; callers still log them only through
// Redacted. Primes and the totient are logged at info, so logs of a real key
// reveal it: run with --log-level warn outside of experiments.
package logging
