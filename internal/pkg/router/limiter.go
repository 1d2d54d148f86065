package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/Folio/app/controllers"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"github.com/ManuelReschke/Folio/internal/pkg/session"
)

// newLimiterStorage keeps rate limiter counters in Redis database 3 so all
// instances share them
func newLimiterStorage() fiber.Storage {
	host, port, password := session.RedisAddress()
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 3,
		Reset:    false,
	})
}

// newLimiter limits requests per client IP. Limiters share one storage, so
// name namespaces the counter keys of each limit.
func newLimiter(storage fiber.Storage, name string, max int, expiration time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return name + ":" + controllers.GetClientIP(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "rate_limited",
				"message": message,
			})
		},
		Next: func(c *fiber.Ctx) bool {
			return env.IsDev() && env.GetBool("RATE_LIMIT_DISABLED", false)
		},
	})
}
