// Package feed reconstructs daily subscription feeds from the partitioned
// event store: which users became subscribed to a service on a given UTC
// day, and which unsubscribed.
//
// Subscription state is never stored as a materialized set. Three
// append-only event streams exist per day and the feed is reconciled from
// them on demand:
//   - Profile creations ("P-{date}"): global, every new profile counts as
//     an implicit subscription to every service.
//   - Explicit subscribes ("S-{date}-{serviceID}-S").
//   - Explicit unsubscribes ("S-{date}-{serviceID}-U").
//
// # Architecture
//
// The package consists of four main components:
//
// 1. PagedScanner: drives a keyset-paginated partition read to exhaustion,
// one page in memory at a time. The first failed page aborts the scan with
// a *StoreQueryError; no partial data escapes.
//
// 2. UserSetCollector: folds a scan into the set of user identifiers it
// mentions, deduplicating across rows and pages.
//
// 3. Reconciler: collects the three streams concurrently and combines them
// with unsubscribe precedence, so a same-day profile creation plus
// unsubscribe cancels out and nobody appears twice in a slice.
//
// 4. Cache: TTL-based reuse of reconciled feeds with stampede protection.
// Feeds are only computed for completed days, which is what makes reuse
// sound.
//
// Availability is a separate, pure check: the feed for day D exists only
// from midnight UTC of D+1 (CheckAvailable), and premature requests are
// rejected before any store traffic.
//
// # Usage Example
//
//	scanner := feed.NewPagedScanner(client, cfg.PageSize)
//	reconciler := feed.NewReconciler(feed.NewUserSetCollector(scanner), logger)
//
//	if err := feed.CheckAvailable(date, time.Now()); err != nil {
//	    return err // *NotYetAvailableError
//	}
//	result, err := reconciler.Reconcile(ctx, date, serviceID)
package feed
