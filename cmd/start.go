package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexgpeppe/io-functions-services/core/config"
	"github.com/alexgpeppe/io-functions-services/core/database"
	"github.com/alexgpeppe/io-functions-services/core/eventstore"
	"github.com/alexgpeppe/io-functions-services/core/loader"
	"github.com/alexgpeppe/io-functions-services/core/logger"
	"github.com/alexgpeppe/io-functions-services/core/middleware/auth"
	"github.com/alexgpeppe/io-functions-services/core/middleware/ratelimit"
	"github.com/alexgpeppe/io-functions-services/core/middleware/rayid"
	"github.com/alexgpeppe/io-functions-services/core/storage"
	"github.com/alexgpeppe/io-functions-services/core/telemetry"

	"github.com/alexgpeppe/io-functions-services/feature/subscriptions"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/alexgpeppe/io-functions-services/docs/swagger"
)

// @title Subscriptions Feed API
// @version 1.0
// @description Daily per-service subscription and unsubscription feeds.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the subscriptions feed server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the Event Store
		// Feeds are reconciled straight from it, so the server cannot run
		// without this connection.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to event store", zap.Error(err))
		}
		if missing, err := eventstore.VerifySchema(db); err != nil {
			logg.Warn("Event store schema check failed", zap.Error(err))
		} else if len(missing) > 0 {
			logg.Warn("Event store table is missing expected columns",
				zap.Strings("columns", missing))
		}
		events := eventstore.NewClient(db)

		// 4. Initialize Storage (Optional)
		// Only snapshot exports need object storage; the feed endpoint
		// works without it.
		var store storage.Client
		if s, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage connection failed, snapshots disabled", zap.Error(err))
		} else {
			store = s
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		feature := subscriptions.NewFeature(events, store, cfg.Storage.Bucket, cfg.Feed, logg)
		mgr.Register(feature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Public endpoints (no API key): health, metrics, docs
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", telemetry.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		// Every feed request must carry a known service API key.
		app.Use(auth.New(auth.Config{Keys: cfg.Server.ServiceKeys()}))

		// 4. Rate Limiting (per calling service)
		app.Use(ratelimit.New(ratelimit.Config{
			RPS:   cfg.Server.RateRPS,
			Burst: cfg.Server.RateBurst,
		}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Snapshot Scheduler
		sched := subscriptions.NewScheduler(
			feature.Service(),
			cfg.Server.ServiceIDs(),
			cfg.Feed.SnapshotCron,
			logg,
		)
		stopScheduler, err := sched.Start(cmd.Context())
		if err != nil {
			logg.Fatal("Failed to start snapshot scheduler", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopScheduler()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
