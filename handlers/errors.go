package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/citas-backend/middleware"
	"github.com/lizet96/citas-backend/store"
)

// responderError traduce los errores del store a status HTTP
func (h *CitaHandler) responderError(c *fiber.Ctx, op string, err error) error {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: msgCitaNoEncontrada})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: verr.Error()})
	}

	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	h.log.Error("error de almacenamiento",
		slog.String("op", op),
		slog.String("request_id", requestID),
		slog.Any("error", err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
}

// ErrorHandler es el manejador global de errores de Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

// NotFound responde a rutas que no existen
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":  "Ruta no encontrada",
		"path":   c.Path(),
		"method": c.Method(),
	})
}
