package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// Keys maps API keys to the service ID they authenticate.
	Keys map[string]string
}

// New returns a middleware that requires a known X-API-Key header and
// stores the resolved service ID in the request locals under "service_id".
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-API-Key")
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing API key",
			})
		}

		serviceID, ok := cfg.Keys[key]
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid API key",
			})
		}

		c.Locals("service_id", serviceID)
		return c.Next()
	}
}
