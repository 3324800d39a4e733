package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/citas-backend/store"
)

// Root confirma que el servidor está arriba
func Root(c *fiber.Ctx) error {
	return c.SendString(msgServidorOK)
}

// Health revisa que el almacenamiento responda
func Health(s store.CitaStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"store":  "down",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"store":  "up",
		})
	}
}
