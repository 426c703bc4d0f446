package health

import (
	"context"
	"time"

	"directory-backend/internal/docstore"

	"github.com/gofiber/fiber/v2"
)

const Version = "1.0.0"

var started = time.Now()

// Handler reports liveness. No store access, safe for probes.
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"uptime":    time.Since(started).Seconds(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   Version,
		})
	}
}

// ReadyHandler reports readiness by pinging the document store.
func ReadyHandler(store docstore.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "not_ready",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}
