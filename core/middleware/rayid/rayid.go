package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New returns a middleware that assigns every request a unique ray ID,
// exposing it to handlers via the "ray_id" local and to callers via the
// X-Ray-ID response header. An inbound X-Ray-ID is kept so upstream
// proxies can thread their own correlation IDs through.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Ray-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set("X-Ray-ID", rid)
		return c.Next()
	}
}
