package subscriptions

import (
	"context"
	"fmt"
	"time"

	"github.com/alexgpeppe/io-functions-services/core/feed"

	"github.com/adhocore/gronx"
	"go.uber.org/zap"
)

// Scheduler exports the previous day's feed of every configured service on
// a cron schedule. The previous UTC day is always the most recent one the
// availability gate accepts.
type Scheduler struct {
	service  *Service
	services []string
	cron     string
	logger   *zap.Logger
}

// NewScheduler creates a scheduler exporting snapshots for services
// according to the cron expression.
func NewScheduler(service *Service, services []string, cron string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		services: services,
		cron:     cron,
		logger:   logger,
	}
}

// Start validates the cron expression and launches the export loop,
// returning a cancel func that stops it. An empty cron expression or an
// empty service list disables scheduling and returns a no-op cancel.
func (s *Scheduler) Start(ctx context.Context) (context.CancelFunc, error) {
	if s.cron == "" || len(s.services) == 0 {
		s.logger.Info("Scheduled snapshot exports disabled")
		return func() {}, nil
	}
	if !gronx.IsValid(s.cron) {
		return nil, fmt.Errorf("invalid snapshot cron expression: %s", s.cron)
	}

	ctx2, cancel := context.WithCancel(ctx)
	go s.run(ctx2)

	s.logger.Info("Snapshot scheduler started",
		zap.String("cron", s.cron),
		zap.Strings("services", s.services),
	)
	return cancel, nil
}

func (s *Scheduler) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(s.cron, now, false)
		if err != nil {
			s.logger.Error("Failed to compute next snapshot tick", zap.Error(err))
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		s.ExportAll(ctx)
	}
}

// ExportAll exports the most recent complete day's feed for every
// configured service. Failures are logged per service and do not stop the
// remaining exports.
func (s *Scheduler) ExportAll(ctx context.Context) {
	yesterday := s.service.now().UTC().AddDate(0, 0, -1)
	date := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	for _, serviceID := range s.services {
		objectName, err := s.service.Export(ctx, serviceID, date)
		if err != nil {
			s.logger.Error("Scheduled snapshot export failed",
				zap.String("service_id", serviceID),
				zap.String("date", feed.FormatDate(date)),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("Scheduled snapshot exported",
			zap.String("service_id", serviceID),
			zap.String("object", objectName),
		)
	}
}
