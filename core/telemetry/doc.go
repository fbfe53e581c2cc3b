// Package telemetry exposes Prometheus counters for the feed pipeline.
//
// Counters are registered with the default registry at init and served over
// the /metrics endpoint via Handler. The scanner reports store traffic
// (pages and rows), the HTTP handler reports request outcomes and the
// snapshot exporter reports export results.
//
// # Usage
//
//	app.Get("/metrics", telemetry.Handler())
//	telemetry.FeedRequests.WithLabelValues(telemetry.OutcomeOK).Inc()
package telemetry
