package subscriptions

import (
	"context"
	"errors"
	"time"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/feed"
	"github.com/alexgpeppe/io-functions-services/core/storage"

	"go.uber.org/zap"
)

// ErrSnapshotsDisabled is returned by snapshot operations when no object
// storage client is configured.
var ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")

// Service reconciles and serves daily subscription feeds.
type Service struct {
	reconciler *feed.Reconciler
	cache      *feed.Cache
	client     storage.Client
	bucket     string
	cfg        feed.Config
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new subscriptions feed service.
func NewService(events eventstore.Client, client storage.Client, bucket string, cfg feed.Config, logger *zap.Logger) *Service {
	scanner := feed.NewPagedScanner(events, cfg.PageSize)
	return &Service{
		reconciler: feed.NewReconciler(feed.NewUserSetCollector(scanner), logger),
		cache:      feed.NewCache(cfg.CacheTTL()),
		client:     client,
		bucket:     bucket,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// GetFeed returns the reconciled feed of serviceID for date. Dates whose
// event records are not complete yet are rejected with a
// *feed.NotYetAvailableError before any store read. Reconciled feeds are
// reused per (date, service) for the configured cache TTL.
func (s *Service) GetFeed(ctx context.Context, serviceID string, date time.Time) (*feed.SubscriptionsFeed, error) {
	if err := feed.CheckAvailable(date, s.now().UTC()); err != nil {
		return nil, err
	}
	return s.cache.GetOrBuild(date, serviceID, func() (*feed.SubscriptionsFeed, error) {
		return s.reconciler.Reconcile(ctx, date, serviceID)
	})
}
