package telemetry

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Request outcomes recorded by FeedRequests.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidDate  = "invalid_date"
	OutcomeNotAvailable = "not_available"
	OutcomeStoreError   = "store_error"
)

var (
	// FeedRequests counts feed lookups by outcome.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "subscriptions",
		Subsystem: "feed",
		Name:      "requests_total",
		Help:      "Feed lookups by outcome.",
	}, []string{"outcome"})

	// StorePages counts pages fetched from the partitioned event store.
	StorePages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "subscriptions",
		Subsystem: "feed",
		Name:      "store_pages_total",
		Help:      "Pages fetched from the partitioned event store.",
	})

	// StoreRows counts event rows scanned across all partitions.
	StoreRows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "subscriptions",
		Subsystem: "feed",
		Name:      "store_rows_total",
		Help:      "Event rows scanned across all partitions.",
	})

	// SnapshotExports counts snapshot exports by outcome (ok, error).
	SnapshotExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "subscriptions",
		Subsystem: "feed",
		Name:      "snapshot_exports_total",
		Help:      "Feed snapshot exports by outcome.",
	}, []string{"outcome"})
)

// Handler returns a Fiber handler serving the Prometheus metrics endpoint.
func Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}
