// Package logging configures structured logging for fmatch.
//
// It wraps log/slog so every component logs the same way:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
//	logger.Debug("pattern matched", "pattern", "require", "captures", 2)
//
// Components that log accept a *slog.Logger through a setter and fall back to
// Nop() when none is given. The matching engine in package pattern is pure and
// does not log.
package logging
