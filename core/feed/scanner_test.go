package feed_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/eventstore/mocks"
	"github.com/alexgpeppe/io-functions-services/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func page(partitionKey string, userIDs ...string) []eventstore.UserEvent {
	events := make([]eventstore.UserEvent, 0, len(userIDs))
	for i, uid := range userIDs {
		events = append(events, eventstore.UserEvent{
			PartitionKey: partitionKey,
			RowKey:       fmt.Sprintf("rk-%03d", i+1),
			UserID:       uid,
		})
	}
	return events
}

func TestPagedScanner_Scan(t *testing.T) {
	ctx := context.Background()
	const pk = "P-2021-05-01"

	t.Run("FollowsContinuationTokens", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 2).
			Return(page(pk, "user-a", "user-b"), eventstore.ContinuationToken("rk-002"), nil).Once()
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken("rk-002"), 2).
			Return(page(pk, "user-c"), eventstore.ContinuationToken(""), nil).Once()

		scanner := feed.NewPagedScanner(client, 2)

		var seen []string
		err := scanner.Scan(ctx, pk, func(events []eventstore.UserEvent) error {
			for _, e := range events {
				seen = append(seen, e.UserID)
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"user-a", "user-b", "user-c"}, seen)
		client.AssertExpectations(t)
	})

	t.Run("FullLastPageIssuesOneMoreFetch", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 2).
			Return(page(pk, "user-a", "user-b"), eventstore.ContinuationToken("rk-002"), nil).Once()
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken("rk-002"), 2).
			Return([]eventstore.UserEvent{}, eventstore.ContinuationToken(""), nil).Once()

		scanner := feed.NewPagedScanner(client, 2)

		calls := 0
		err := scanner.Scan(ctx, pk, func(events []eventstore.UserEvent) error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		// The empty trailing page is not handed to the callback.
		assert.Equal(t, 1, calls)
		client.AssertExpectations(t)
	})

	t.Run("EmptyPartition", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 1000).
			Return([]eventstore.UserEvent{}, eventstore.ContinuationToken(""), nil).Once()

		scanner := feed.NewPagedScanner(client, 1000)

		err := scanner.Scan(ctx, pk, func(events []eventstore.UserEvent) error {
			t.Fatal("callback should not run for an empty partition")
			return nil
		})

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("StoreErrorWrappedAsStoreQueryError", func(t *testing.T) {
		cause := errors.New("connection reset")
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 1000).
			Return(nil, eventstore.ContinuationToken(""), cause).Once()

		scanner := feed.NewPagedScanner(client, 1000)

		err := scanner.Scan(ctx, pk, func(events []eventstore.UserEvent) error { return nil })
		assert.Error(t, err)

		var queryErr *feed.StoreQueryError
		assert.True(t, errors.As(err, &queryErr))
		assert.Equal(t, pk, queryErr.PartitionKey)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("SecondPageErrorAbortsScan", func(t *testing.T) {
		cause := errors.New("throttled")
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 2).
			Return(page(pk, "user-a", "user-b"), eventstore.ContinuationToken("rk-002"), nil).Once()
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken("rk-002"), 2).
			Return(nil, eventstore.ContinuationToken(""), cause).Once()

		scanner := feed.NewPagedScanner(client, 2)

		pages := 0
		err := scanner.Scan(ctx, pk, func(events []eventstore.UserEvent) error {
			pages++
			return nil
		})

		assert.Error(t, err)
		assert.Equal(t, 1, pages)

		var queryErr *feed.StoreQueryError
		assert.True(t, errors.As(err, &queryErr))
		client.AssertExpectations(t)
	})

	t.Run("CallbackErrorStopsScan", func(t *testing.T) {
		sentinel := errors.New("stop here")
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 2).
			Return(page(pk, "user-a", "user-b"), eventstore.ContinuationToken("rk-002"), nil).Once()

		scanner := feed.NewPagedScanner(client, 2)

		err := scanner.Scan(ctx, pk, func(events []eventstore.UserEvent) error {
			return sentinel
		})

		assert.ErrorIs(t, err, sentinel)
		client.AssertNumberOfCalls(t, "QueryPage", 1)
	})
}
