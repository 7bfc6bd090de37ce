// Package logger builds configured slog.Logger instances for test suites and
// provides attribute helpers for the toolkit's common log fields.
//
// Suites usually want human-readable text output while debugging locally and
// JSON when run on CI, so the factory defaults to text at info level and is
// adjusted through functional options.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Suite("checkout")),
//	)
//
//	log.Debug("page not ready", logger.Page("login"), logger.Location(url))
package logger
