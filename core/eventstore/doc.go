// Package eventstore reads the partitioned subscription event store.
//
// The store is an append-only MySQL table (subscription_events) written by the
// upstream subscription workflows. Every row belongs to a partition that
// encodes the day and the stream ("P-{date}" for profile creations,
// "S-{date}-{serviceID}-S" for subscribes, "S-{date}-{serviceID}-U" for
// unsubscribes) and carries an opaque row key that orders rows within the
// partition.
//
// # Pagination
//
// QueryPage is a keyset-paginated read: each call fetches at most pageSize
// rows ordered by row key, strictly after the given continuation token. A
// full page returns the last row key as the next token; a short page returns
// an empty token, signalling the partition is exhausted. Tokens are only
// meaningful for the partition that produced them.
//
// # Schema Verification
//
// VerifySchema inspects the live table at startup and reports columns the
// feed queries depend on but the table lacks, so misconfigured environments
// fail loudly instead of serving empty feeds.
//
// # Usage
//
//	client := eventstore.NewClient(db)
//	events, next, err := client.QueryPage(ctx, "P-2021-05-01", "", 1000)
package eventstore
