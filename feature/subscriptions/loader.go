package subscriptions

import (
	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/feed"
	"github.com/alexgpeppe/io-functions-services/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new subscriptions feed feature. store may be nil
// when object storage is not configured; the feed endpoint works without
// it and only snapshot operations are disabled.
func NewFeature(events eventstore.Client, store storage.Client, bucket string, cfg feed.Config, logger *zap.Logger) *Feature {
	svc := NewService(events, store, bucket, cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "subscriptions"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service so the snapshot scheduler and the
// CLI share its cache.
func (f *Feature) Service() *Service {
	return f.service
}
