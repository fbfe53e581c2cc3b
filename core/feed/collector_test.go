package feed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/eventstore/mocks"
	"github.com/alexgpeppe/io-functions-services/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserSetCollector_Collect(t *testing.T) {
	ctx := context.Background()
	const pk = "S-2021-05-01-svc-newsletter-S"

	t.Run("DeduplicatesAcrossPages", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 2).
			Return(page(pk, "user-a", "user-b"), eventstore.ContinuationToken("rk-002"), nil).Once()
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken("rk-002"), 2).
			Return(page(pk, "user-b", "user-c"), eventstore.ContinuationToken("rk-004"), nil).Once()
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken("rk-004"), 2).
			Return([]eventstore.UserEvent{}, eventstore.ContinuationToken(""), nil).Once()

		collector := feed.NewUserSetCollector(feed.NewPagedScanner(client, 2))

		users, err := collector.Collect(ctx, pk)
		assert.NoError(t, err)
		assert.Len(t, users, 3)
		assert.True(t, users.Contains("user-a"))
		assert.True(t, users.Contains("user-b"))
		assert.True(t, users.Contains("user-c"))
		client.AssertExpectations(t)
	})

	t.Run("EmptyPartitionYieldsEmptySet", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 1000).
			Return([]eventstore.UserEvent{}, eventstore.ContinuationToken(""), nil).Once()

		collector := feed.NewUserSetCollector(feed.NewPagedScanner(client, 1000))

		users, err := collector.Collect(ctx, pk)
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("StoreErrorReturnsNoSet", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("QueryPage", mock.Anything, pk, eventstore.ContinuationToken(""), 1000).
			Return(nil, eventstore.ContinuationToken(""), errors.New("boom")).Once()

		collector := feed.NewUserSetCollector(feed.NewPagedScanner(client, 1000))

		users, err := collector.Collect(ctx, pk)
		assert.Error(t, err)
		assert.Nil(t, users)

		var queryErr *feed.StoreQueryError
		assert.True(t, errors.As(err, &queryErr))
	})
}

func TestUserSet(t *testing.T) {
	s := make(feed.UserSet)
	s.Add("user-a")
	s.Add("user-a")
	s.Add("user-b")

	assert.Len(t, s, 2)
	assert.True(t, s.Contains("user-a"))
	assert.False(t, s.Contains("user-z"))
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, s.Values())
}
