// Package subscriptions implements the daily subscriptions feed feature.
//
// It serves, for each subscriber service and UTC day, the set of users who
// became subscribed and the set of users who unsubscribed, reconciled on
// demand from the partitioned event store by the `core/feed` engine.
//
// # Components
//
//   - Service: Applies the availability gate, drives reconciliation through
//     the cached engine and owns snapshot export/read/prune.
//   - Handler: Exposes the HTTP endpoint and maps engine errors to statuses
//     (400 malformed date, 404 not yet available, 500 store failure).
//   - Scheduler: Cron-driven export of the previous day's feed for every
//     configured service.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /subscriptions-feed/:date : Feed of the calling service for that
//     day. The caller is identified by its API key.
//
// # Snapshots
//
// Export writes the reconciled feed to object storage under
// {prefix}/{serviceID}/{date}.json and prunes the oldest snapshots beyond
// the retention count. ReadSnapshot loads one back, used by the CLI.
package subscriptions
