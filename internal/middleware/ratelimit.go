package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit caps requests per client IP over the window. Applied
// per-route so the assistant, the quote form and the login endpoint
// each carry their own budget.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderRetryAfter, window.String())
			return c.Status(fiber.StatusTooManyRequests).
				JSON(fiber.Map{"error": "too many requests"})
		},
	})
}

func clientKey(c *fiber.Ctx) string {
	return c.IP()
}
