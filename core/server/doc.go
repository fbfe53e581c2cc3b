// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings, including the
// API key registry of subscriber services.
//
// # Configuration
//
// The Config struct defines the HTTP port, the per-service API keys and the
// rate limiting parameters. API keys are configured as comma-separated
// serviceID:key pairs so that each calling service authenticates with its
// own credential.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the auth and ratelimit middleware, which consume the parsed
// key registry.
//
//	keys := cfg.Server.ServiceKeys() // map[apiKey]serviceID
package server
