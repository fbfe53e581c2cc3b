// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Validates the per-service API key and resolves the calling
//     service ID into the request locals.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RateLimit: Applies a token-bucket rate limit per authenticated service.
//
// These middleware components are designed to be registered globally or per-route group
// in the main application setup.
package middleware
