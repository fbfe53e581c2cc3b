package feed

import (
	"context"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
)

// UserSetCollector folds a full partition scan into the set of user
// identifiers it mentions.
type UserSetCollector struct {
	scanner *PagedScanner
}

// NewUserSetCollector returns a collector reading pages through scanner.
func NewUserSetCollector(scanner *PagedScanner) *UserSetCollector {
	return &UserSetCollector{scanner: scanner}
}

// Collect drives a scan of partitionKey to exhaustion and returns the set
// of user identifiers seen across all pages. Users mentioned by several
// rows appear once. A failed page fetch surfaces the scan's
// *StoreQueryError and no set.
func (c *UserSetCollector) Collect(ctx context.Context, partitionKey string) (UserSet, error) {
	users := make(UserSet)
	err := c.scanner.Scan(ctx, partitionKey, func(events []eventstore.UserEvent) error {
		for _, event := range events {
			users.Add(event.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
