// Package logger builds configured slog.Logger instances with optional
// context-driven attribute injection.
//
// The factory covers the two shapes a service needs: JSON output for log
// aggregation in production and text output for local development. Context
// extractors let request-scoped values (request ID, client IP) flow into
// every log record automatically:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
package logger
