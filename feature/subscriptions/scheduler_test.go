package subscriptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	esmocks "github.com/alexgpeppe/io-functions-services/core/eventstore/mocks"
	"github.com/alexgpeppe/io-functions-services/core/feed"
	stmocks "github.com/alexgpeppe/io-functions-services/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestScheduler_Start(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(new(esmocks.Client), nil, feed.Config{PageSize: 1000},
		time.Date(2021, 5, 2, 4, 0, 0, 0, time.UTC))

	t.Run("DisabledWithEmptyCron", func(t *testing.T) {
		sched := NewScheduler(svc, []string{"svc-newsletter"}, "", zap.NewNop())

		cancel, err := sched.Start(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, cancel)
		cancel()
	})

	t.Run("DisabledWithNoServices", func(t *testing.T) {
		sched := NewScheduler(svc, nil, "0 4 * * *", zap.NewNop())

		cancel, err := sched.Start(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, cancel)
		cancel()
	})

	t.Run("RejectsInvalidCron", func(t *testing.T) {
		sched := NewScheduler(svc, []string{"svc-newsletter"}, "every day at four", zap.NewNop())

		cancel, err := sched.Start(ctx)
		assert.Error(t, err)
		assert.Nil(t, cancel)
	})

	t.Run("StartsAndStops", func(t *testing.T) {
		sched := NewScheduler(svc, []string{"svc-newsletter"}, "0 4 * * *", zap.NewNop())

		cancel, err := sched.Start(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, cancel)
		cancel()
	})
}

func TestScheduler_ExportAll(t *testing.T) {
	ctx := context.Background()
	// The most recent complete day as of 2021-05-02T04:00Z.
	date := mayFirst

	t.Run("ExportsYesterdayForEachService", func(t *testing.T) {
		client := new(esmocks.Client)
		stubStream(client, feed.ProfileCreationsKey(date), "user-a")
		for _, serviceID := range []string{"svc-a", "svc-b"} {
			stubStream(client, feed.ServiceSubscriptionsKey(date, serviceID), "user-b")
			stubStream(client, feed.ServiceUnsubscriptionsKey(date, serviceID))
		}

		store := new(stmocks.Client)
		store.On("BucketExists", mock.Anything, "test-feeds").Return(true, nil)
		store.On("PutObject", mock.Anything, "test-feeds", mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

		cfg := feed.Config{PageSize: 1000, SnapshotPrefix: "feeds"}
		svc := newTestService(client, store, cfg, time.Date(2021, 5, 2, 4, 0, 0, 0, time.UTC))
		sched := NewScheduler(svc, []string{"svc-a", "svc-b"}, "0 4 * * *", zap.NewNop())

		sched.ExportAll(ctx)

		store.AssertCalled(t, "PutObject", mock.Anything, "test-feeds", "feeds/svc-a/2021-05-01.json",
			mock.Anything, mock.Anything, mock.Anything)
		store.AssertCalled(t, "PutObject", mock.Anything, "test-feeds", "feeds/svc-b/2021-05-01.json",
			mock.Anything, mock.Anything, mock.Anything)
		store.AssertNumberOfCalls(t, "PutObject", 2)
	})

	t.Run("ContinuesAfterServiceFailure", func(t *testing.T) {
		client := new(esmocks.Client)
		stubStream(client, feed.ProfileCreationsKey(date), "user-a")

		client.On("QueryPage", mock.Anything, feed.ServiceSubscriptionsKey(date, "svc-a"),
			eventstore.ContinuationToken(""), mock.Anything).
			Return(nil, eventstore.ContinuationToken(""), errors.New("connection reset"))
		stubStream(client, feed.ServiceUnsubscriptionsKey(date, "svc-a"))

		stubStream(client, feed.ServiceSubscriptionsKey(date, "svc-b"), "user-b")
		stubStream(client, feed.ServiceUnsubscriptionsKey(date, "svc-b"))

		store := new(stmocks.Client)
		store.On("BucketExists", mock.Anything, "test-feeds").Return(true, nil)
		store.On("PutObject", mock.Anything, "test-feeds", mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

		cfg := feed.Config{PageSize: 1000, SnapshotPrefix: "feeds"}
		svc := newTestService(client, store, cfg, time.Date(2021, 5, 2, 4, 0, 0, 0, time.UTC))
		sched := NewScheduler(svc, []string{"svc-a", "svc-b"}, "0 4 * * *", zap.NewNop())

		sched.ExportAll(ctx)

		store.AssertCalled(t, "PutObject", mock.Anything, "test-feeds", "feeds/svc-b/2021-05-01.json",
			mock.Anything, mock.Anything, mock.Anything)
		store.AssertNumberOfCalls(t, "PutObject", 1)
	})
}
