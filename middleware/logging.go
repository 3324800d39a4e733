package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/citas-backend/models"
)

// Campos del body que no deben quedar en los logs
var sensitiveFields = []string{"correo", "password", "token", "secret"}

const maxBodyLog = 1000

// LoggingMiddleware registra cada petición HTTP con slog
func LoggingMiddleware(log *slog.Logger, environment string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continuar con la petición
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		entry := createLogEntry(c, int(time.Since(start).Milliseconds()), status, environment)
		writeLogEntry(c, log, entry)

		return err
	}
}

// createLogEntry crea una entrada de log basada en la petición
func createLogEntry(c *fiber.Ctx, responseTime, status int, environment string) models.LogEntry {
	// IP real del cliente
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		ip = realIP
	}

	requestID, _ := c.Locals(RequestIDKey).(string)

	// Body solo para métodos que lo llevan
	var body string
	if c.Method() == fiber.MethodPost || c.Method() == fiber.MethodPut || c.Method() == fiber.MethodPatch {
		body = filterSensitiveData(string(c.Body()))
	}

	if environment == "" {
		environment = models.EnvironmentDevelopment
	}

	return models.LogEntry{
		Method:       c.Method(),
		Path:         c.Path(),
		Route:        c.Route().Path,
		StatusCode:   status,
		ResponseTime: responseTime,
		IP:           ip,
		UserAgent:    c.Get(fiber.HeaderUserAgent),
		RequestID:    requestID,
		Body:         body,
		Query:        string(c.Request().URI().QueryString()),
		LogLevel:     determineLogLevel(status),
		Environment:  environment,
	}
}

func writeLogEntry(c *fiber.Ctx, log *slog.Logger, e models.LogEntry) {
	attrs := []slog.Attr{
		slog.String("method", e.Method),
		slog.String("path", e.Path),
		slog.String("route", e.Route),
		slog.Int("status", e.StatusCode),
		slog.Int("response_time_ms", e.ResponseTime),
		slog.String("ip", e.IP),
		slog.String("request_id", e.RequestID),
		slog.String("environment", e.Environment),
	}
	if e.UserAgent != "" {
		attrs = append(attrs, slog.String("user_agent", e.UserAgent))
	}
	if e.Query != "" {
		attrs = append(attrs, slog.String("query", e.Query))
	}
	if e.Body != "" {
		attrs = append(attrs, slog.String("body", e.Body))
	}

	level := slog.LevelInfo
	switch e.LogLevel {
	case models.LogLevelWarning:
		level = slog.LevelWarn
	case models.LogLevelError:
		level = slog.LevelError
	}

	log.LogAttrs(c.UserContext(), level, fmt.Sprintf("%s %s", e.Method, e.Path), attrs...)
}

// filterSensitiveData filtra información sensible del body
func filterSensitiveData(body string) string {
	if body == "" {
		return ""
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		// Si no es JSON válido, retornar truncado
		return truncate(body)
	}

	for _, field := range sensitiveFields {
		if _, exists := data[field]; exists {
			data[field] = "[FILTERED]"
		}
	}

	filtered, _ := json.Marshal(data)
	return truncate(string(filtered))
}

func truncate(s string) string {
	if len(s) > maxBodyLog {
		return s[:maxBodyLog] + "...[truncated]"
	}
	return s
}

// determineLogLevel determina el nivel de log basado en el status code
func determineLogLevel(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return models.LogLevelSuccess
	case statusCode >= 300 && statusCode < 400:
		return models.LogLevelInfo
	case statusCode >= 400 && statusCode < 500:
		return models.LogLevelWarning
	case statusCode >= 500:
		return models.LogLevelError
	default:
		return models.LogLevelInfo
	}
}
