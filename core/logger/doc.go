// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The logger is designed to be context-aware regarding RayIDs (request IDs)
// and the service identity resolved by the auth middleware. WithRayID
// extracts the RayID from a Fiber context and attaches it to the log entry;
// WithRequest additionally attaches the caller's service_id, so every log
// line produced while reconciling a feed can be correlated both to the
// request and to the subscribing service.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRequest(log, c)
//	l.Error("Feed lookup failed", zap.Error(err))
package logger
