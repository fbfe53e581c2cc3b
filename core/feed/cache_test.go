package feed_test

import (
	"errors"
	"testing"
	"time"

	"github.com/alexgpeppe/io-functions-services/core/feed"

	"github.com/stretchr/testify/assert"
)

func feedFor(date time.Time) *feed.SubscriptionsFeed {
	return &feed.SubscriptionsFeed{
		DateUTC:         feed.FormatDate(date),
		Subscriptions:   []string{"user-a"},
		Unsubscriptions: []string{},
	}
}

func TestCache_GetOrBuild(t *testing.T) {
	date := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ReusesFreshEntry", func(t *testing.T) {
		cache := feed.NewCache(time.Minute)

		builds := 0
		build := func() (*feed.SubscriptionsFeed, error) {
			builds++
			return feedFor(date), nil
		}

		first, err := cache.GetOrBuild(date, "svc-newsletter", build)
		assert.NoError(t, err)
		second, err := cache.GetOrBuild(date, "svc-newsletter", build)
		assert.NoError(t, err)

		assert.Equal(t, 1, builds)
		assert.Same(t, first, second)
	})

	t.Run("ZeroTTLAlwaysRebuilds", func(t *testing.T) {
		cache := feed.NewCache(0)

		builds := 0
		build := func() (*feed.SubscriptionsFeed, error) {
			builds++
			return feedFor(date), nil
		}

		_, err := cache.GetOrBuild(date, "svc-newsletter", build)
		assert.NoError(t, err)
		_, err = cache.GetOrBuild(date, "svc-newsletter", build)
		assert.NoError(t, err)

		assert.Equal(t, 2, builds)
	})

	t.Run("KeysAreDateAndServiceScoped", func(t *testing.T) {
		cache := feed.NewCache(time.Minute)

		builds := 0
		build := func() (*feed.SubscriptionsFeed, error) {
			builds++
			return feedFor(date), nil
		}

		_, _ = cache.GetOrBuild(date, "svc-newsletter", build)
		_, _ = cache.GetOrBuild(date, "svc-alerts", build)
		_, _ = cache.GetOrBuild(date.AddDate(0, 0, -1), "svc-newsletter", build)

		assert.Equal(t, 3, builds)
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		cache := feed.NewCache(time.Minute)

		builds := 0
		failing := func() (*feed.SubscriptionsFeed, error) {
			builds++
			if builds == 1 {
				return nil, errors.New("store down")
			}
			return feedFor(date), nil
		}

		_, err := cache.GetOrBuild(date, "svc-newsletter", failing)
		assert.Error(t, err)

		result, err := cache.GetOrBuild(date, "svc-newsletter", failing)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 2, builds)
	})

	t.Run("InvalidateForcesRebuild", func(t *testing.T) {
		cache := feed.NewCache(time.Minute)

		builds := 0
		build := func() (*feed.SubscriptionsFeed, error) {
			builds++
			return feedFor(date), nil
		}

		_, _ = cache.GetOrBuild(date, "svc-newsletter", build)
		cache.Invalidate(date, "svc-newsletter")
		_, _ = cache.GetOrBuild(date, "svc-newsletter", build)

		assert.Equal(t, 2, builds)
	})
}
