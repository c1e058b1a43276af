// Package logger builds configured slog loggers with environment-aware
// defaults and context-based attribute injection.
//
// Development gets human-readable text output at debug level; every other
// environment gets JSON at info level. Context extractors let middleware
// values (request IDs) appear on every record logged with that context:
//
//	log := logger.New(
//		logger.WithEnvironment(env, "authgate"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
package logger
