package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexgpeppe/io-functions-services/core/config"
	"github.com/alexgpeppe/io-functions-services/core/database"
	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/feed"
	"github.com/alexgpeppe/io-functions-services/core/logger"
	"github.com/alexgpeppe/io-functions-services/core/storage"
	"github.com/alexgpeppe/io-functions-services/feature/subscriptions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for feed commands
	feedDateFlag string
)

// feedCmd is the parent command for all feed operations.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Reconcile, export, and inspect subscription feeds",
	Long: `Reconcile a service's daily subscription feed from the event store,
print it as JSON, or work with exported snapshots in object storage.`,
}

// feedGetCmd reconciles a feed and prints it.
var feedGetCmd = &cobra.Command{
	Use:   "get [service-id]",
	Short: "Reconcile a service's feed and print it as JSON",
	Long: `Reconcile the subscription feed of a service for one UTC day.

Examples:
  # Yesterday's feed (the most recent complete day)
  feed get svc-newsletter

  # A specific day
  feed get svc-newsletter --date 2021-05-01`,
	Args: cobra.ExactArgs(1),
	RunE: runFeedGet,
}

// feedExportCmd reconciles a feed and uploads it as a snapshot.
var feedExportCmd = &cobra.Command{
	Use:   "export [service-id]",
	Short: "Reconcile a service's feed and upload it as a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedExport,
}

// feedSnapshotCmd prints a previously exported snapshot.
var feedSnapshotCmd = &cobra.Command{
	Use:   "snapshot [service-id]",
	Short: "Print a previously exported feed snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedSnapshot,
}

func init() {
	feedCmd.PersistentFlags().StringVar(&feedDateFlag, "date", "",
		"Feed date as YYYY-MM-DD in UTC (defaults to yesterday)")

	feedCmd.AddCommand(feedGetCmd)
	feedCmd.AddCommand(feedExportCmd)
	feedCmd.AddCommand(feedSnapshotCmd)

	RootCmd.AddCommand(feedCmd)
}

// resolveFeedDate parses --date, defaulting to the most recent complete
// UTC day.
func resolveFeedDate() (time.Time, error) {
	if feedDateFlag == "" {
		y := time.Now().UTC().AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return feed.ParseDate(feedDateFlag)
}

// newFeedService wires a feed service from configuration the same way the
// server does. Storage is only connected when the command needs snapshots.
func newFeedService(withStorage bool) (*subscriptions.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to event store: %w", err)
	}
	events := eventstore.NewClient(db)

	var store storage.Client
	if withStorage {
		s, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		store = s
	}

	feature := subscriptions.NewFeature(events, store, cfg.Storage.Bucket, cfg.Feed, logg)
	return feature.Service(), logg, nil
}

func printFeedJSON(result *feed.SubscriptionsFeed) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal feed: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runFeedGet(cmd *cobra.Command, args []string) error {
	date, err := resolveFeedDate()
	if err != nil {
		return err
	}

	svc, _, err := newFeedService(false)
	if err != nil {
		return err
	}

	result, err := svc.GetFeed(context.Background(), args[0], date)
	if err != nil {
		return fmt.Errorf("failed to reconcile feed: %w", err)
	}
	return printFeedJSON(result)
}

func runFeedExport(cmd *cobra.Command, args []string) error {
	date, err := resolveFeedDate()
	if err != nil {
		return err
	}

	svc, logg, err := newFeedService(true)
	if err != nil {
		return err
	}

	objectName, err := svc.Export(context.Background(), args[0], date)
	if err != nil {
		return fmt.Errorf("failed to export feed: %w", err)
	}

	logg.Info("Snapshot exported",
		zap.String("service_id", args[0]),
		zap.String("object", objectName),
	)
	return nil
}

func runFeedSnapshot(cmd *cobra.Command, args []string) error {
	date, err := resolveFeedDate()
	if err != nil {
		return err
	}

	svc, _, err := newFeedService(true)
	if err != nil {
		return err
	}

	result, err := svc.ReadSnapshot(context.Background(), args[0], date)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	return printFeedJSON(result)
}
