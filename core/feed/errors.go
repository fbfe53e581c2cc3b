package feed

import (
	"fmt"
	"time"
)

// NotYetAvailableError reports that the feed for a date cannot be served
// yet: a day's event records are only complete once the following UTC day
// has started. It is a policy rejection, not a store failure.
type NotYetAvailableError struct {
	// Date is the requested feed date (UTC midnight).
	Date time.Time
	// AvailableSince is the instant from which the feed becomes queryable.
	AvailableSince time.Time
}

func (e *NotYetAvailableError) Error() string {
	return fmt.Sprintf("subscriptions feed for %s is not yet available: data becomes available at %s",
		FormatDate(e.Date), e.AvailableSince.UTC().Format(time.RFC3339))
}

// StoreQueryError reports a failed page fetch from the event store. The
// first failed page aborts the whole reconciliation: no partial feed is
// ever returned and no retries happen at this level.
type StoreQueryError struct {
	// PartitionKey identifies the scan that failed.
	PartitionKey string
	// Cause is the underlying store error.
	Cause error
}

func (e *StoreQueryError) Error() string {
	return fmt.Sprintf("store query failed for partition %s: %v", e.PartitionKey, e.Cause)
}

// Unwrap exposes the underlying store error to errors.Is and errors.As.
func (e *StoreQueryError) Unwrap() error {
	return e.Cause
}
