package feed

import (
	"context"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/telemetry"
)

// PagedScanner reads one partition of the event store to completion,
// following continuation tokens until the store reports no further pages.
// A scan holds one page in memory at a time and is not restartable; the
// first failed page fetch aborts it with a *StoreQueryError.
type PagedScanner struct {
	client   eventstore.Client
	pageSize int
}

// NewPagedScanner returns a scanner fetching pageSize rows per store query.
func NewPagedScanner(client eventstore.Client, pageSize int) *PagedScanner {
	if pageSize <= 0 {
		pageSize = eventstore.DefaultPageSize
	}
	return &PagedScanner{client: client, pageSize: pageSize}
}

// Scan fetches every page of events whose partition key matches
// partitionKey exactly and hands each non-empty page to fn in row key
// order. An fn error stops the scan and is returned as-is.
func (s *PagedScanner) Scan(ctx context.Context, partitionKey string, fn func(events []eventstore.UserEvent) error) error {
	var token eventstore.ContinuationToken
	for {
		events, next, err := s.client.QueryPage(ctx, partitionKey, token, s.pageSize)
		if err != nil {
			return &StoreQueryError{PartitionKey: partitionKey, Cause: err}
		}
		telemetry.StorePages.Inc()
		telemetry.StoreRows.Add(float64(len(events)))

		if len(events) > 0 {
			if err := fn(events); err != nil {
				return err
			}
		}
		if next == "" {
			return nil
		}
		token = next
	}
}
