package ratelimit

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// Config holds configuration for the per-service rate limiter.
type Config struct {
	// RPS is the sustained requests-per-second allowance per key.
	RPS float64
	// Burst is the instantaneous burst allowance per key.
	Burst int
}

// limiterPool lazily creates one token bucket per key.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	cfg      Config
}

func (p *limiterPool) allow(key string) bool {
	p.mu.Lock()
	limiter, ok := p.limiters[key]
	if !ok {
		rps := p.cfg.RPS
		if rps <= 0 {
			rps = 5
		}
		burst := p.cfg.Burst
		if burst <= 0 {
			burst = 10
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
		p.limiters[key] = limiter
	}
	p.mu.Unlock()
	return limiter.Allow()
}

// New returns a middleware limiting each authenticated service (falling
// back to the client IP before auth ran) to the configured request rate.
func New(cfg Config) fiber.Handler {
	pool := &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		cfg:      cfg,
	}
	return func(c *fiber.Ctx) error {
		key, _ := c.Locals("service_id").(string)
		if key == "" {
			key = c.IP()
		}
		if !pool.allow(key) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
