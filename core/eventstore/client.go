package eventstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DefaultPageSize is the page size used when callers pass a non-positive one.
const DefaultPageSize = 1000

// ContinuationToken marks the position reached by a previous page fetch.
// The zero value starts a scan at the beginning of the partition; a token
// returned by QueryPage resumes strictly after the rows already seen.
type ContinuationToken string

// Client defines the interface for reading the partitioned subscription
// event store.
type Client interface {
	// QueryPage fetches one page of events whose partition key matches
	// partitionKey exactly, ordered by row key and resuming after token.
	// The returned token is non-empty while further pages may remain.
	QueryPage(ctx context.Context, partitionKey string, token ContinuationToken, pageSize int) ([]UserEvent, ContinuationToken, error)
}

// NewClient returns a Client backed by the given GORM handle.
func NewClient(db *gorm.DB) Client {
	return &gormClient{db: db}
}

type gormClient struct {
	db *gorm.DB
}

func (c *gormClient) QueryPage(ctx context.Context, partitionKey string, token ContinuationToken, pageSize int) ([]UserEvent, ContinuationToken, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	query := c.db.WithContext(ctx).
		Where("partition_key = ?", partitionKey).
		Order("row_key").
		Limit(pageSize)
	if token != "" {
		query = query.Where("row_key > ?", string(token))
	}

	var events []UserEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, "", fmt.Errorf("failed to query partition %s: %w", partitionKey, err)
	}

	// A short page means the partition is exhausted. A full page hands back
	// the last row key so the next fetch resumes after it.
	if len(events) < pageSize {
		return events, "", nil
	}
	return events, ContinuationToken(events[len(events)-1].RowKey), nil
}
