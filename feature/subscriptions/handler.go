package subscriptions

import (
	"errors"

	"github.com/alexgpeppe/io-functions-services/core/feed"
	"github.com/alexgpeppe/io-functions-services/core/logger"
	"github.com/alexgpeppe/io-functions-services/core/telemetry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the subscriptions feed.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the subscriptions feed routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/subscriptions-feed")
	group.Get("/:date", h.HandleGetSubscriptionsFeed)
}

// HandleGetSubscriptionsFeed returns the reconciled feed of the calling
// service for a date.
// @Summary Get Subscriptions Feed
// @Description Users who became subscribed to the caller's service on the given UTC day, and users who unsubscribed from it.
// @Tags subscriptions-feed
// @Produce json
// @Param date path string true "Feed date (YYYY-MM-DD)"
// @Success 200 {object} feed.SubscriptionsFeed "Reconciled feed"
// @Failure 400 {object} map[string]string "Malformed date"
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Failure 404 {object} map[string]string "Feed not yet available"
// @Failure 500 {object} map[string]string "Store query failed"
// @Security ApiKeyAuth
// @Router /subscriptions-feed/{date} [get]
func (h *Handler) HandleGetSubscriptionsFeed(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	serviceID, _ := c.Locals("service_id").(string)
	if serviceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing service identity",
		})
	}

	date, err := feed.ParseDate(c.Params("date"))
	if err != nil {
		telemetry.FeedRequests.WithLabelValues(telemetry.OutcomeInvalidDate).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.service.GetFeed(c.Context(), serviceID, date)
	if err != nil {
		var notYet *feed.NotYetAvailableError
		if errors.As(err, &notYet) {
			telemetry.FeedRequests.WithLabelValues(telemetry.OutcomeNotAvailable).Inc()
			l.Info("Feed not yet available",
				zap.String("date", feed.FormatDate(date)),
				zap.Time("available_since", notYet.AvailableSince),
			)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": notYet.Error(),
			})
		}

		telemetry.FeedRequests.WithLabelValues(telemetry.OutcomeStoreError).Inc()
		l.Error("Feed reconciliation failed",
			zap.String("date", feed.FormatDate(date)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	telemetry.FeedRequests.WithLabelValues(telemetry.OutcomeOK).Inc()
	return c.JSON(result)
}
