package subscriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/alexgpeppe/io-functions-services/core/feed"
	"github.com/alexgpeppe/io-functions-services/core/telemetry"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SnapshotObjectName returns the object key of the snapshot of serviceID
// for date, e.g. "feeds/svc-newsletter/2021-05-01.json".
func (s *Service) SnapshotObjectName(serviceID string, date time.Time) string {
	return path.Join(s.cfg.SnapshotPrefix, serviceID, feed.FormatDate(date)+".json")
}

// Export reconciles the feed of serviceID for date and uploads it as a
// JSON snapshot, then prunes snapshots beyond the retention count. It
// returns the object name written. The export reuses GetFeed, so the
// availability gate and the cache apply.
func (s *Service) Export(ctx context.Context, serviceID string, date time.Time) (string, error) {
	if s.client == nil {
		return "", ErrSnapshotsDisabled
	}

	objectName, err := s.export(ctx, serviceID, date)
	if err != nil {
		telemetry.SnapshotExports.WithLabelValues("error").Inc()
		return "", err
	}
	telemetry.SnapshotExports.WithLabelValues("ok").Inc()
	return objectName, nil
}

func (s *Service) export(ctx context.Context, serviceID string, date time.Time) (string, error) {
	result, err := s.GetFeed(ctx, serviceID, date)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal feed: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	objectName := s.SnapshotObjectName(serviceID, date)
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", objectName, err)
	}

	// A failed prune leaves extra snapshots behind; the export itself
	// succeeded.
	if err := s.pruneSnapshots(ctx, serviceID); err != nil {
		s.logger.Warn("Snapshot pruning failed",
			zap.String("service_id", serviceID),
			zap.Error(err),
		)
	}

	s.logger.Info("Feed snapshot exported",
		zap.String("service_id", serviceID),
		zap.String("object", objectName),
		zap.Int("subscriptions", len(result.Subscriptions)),
		zap.Int("unsubscriptions", len(result.Unsubscriptions)),
	)
	return objectName, nil
}

// ReadSnapshot loads a previously exported snapshot.
func (s *Service) ReadSnapshot(ctx context.Context, serviceID string, date time.Time) (*feed.SubscriptionsFeed, error) {
	if s.client == nil {
		return nil, ErrSnapshotsDisabled
	}

	objectName := s.SnapshotObjectName(serviceID, date)
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", objectName, err)
	}
	defer obj.Close()

	var result feed.SubscriptionsFeed
	if err := json.NewDecoder(obj).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", objectName, err)
	}
	return &result, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// pruneSnapshots removes the oldest snapshots of serviceID beyond the
// configured retention count. Snapshot names embed the date, so
// lexicographic order is chronological.
func (s *Service) pruneSnapshots(ctx context.Context, serviceID string) error {
	keep := s.cfg.SnapshotKeep
	if keep <= 0 {
		return nil
	}

	prefix := path.Join(s.cfg.SnapshotPrefix, serviceID) + "/"
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list snapshots under %s: %w", prefix, obj.Err)
		}
		names = append(names, obj.Key)
	}
	if len(names) <= keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove snapshot %s: %w", name, err)
		}
		s.logger.Debug("Pruned snapshot", zap.String("object", name))
	}
	return nil
}
