package routes

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lizet96/citas-backend/config"
	"github.com/lizet96/citas-backend/handlers"
	"github.com/lizet96/citas-backend/metrics"
	"github.com/lizet96/citas-backend/middleware"
	"github.com/lizet96/citas-backend/store"
)

// Deps agrupa lo que las rutas necesitan del arranque
type Deps struct {
	Config  *config.Config
	Store   store.CitaStore
	Metrics *metrics.Manager
	Logger  *slog.Logger
}

// NewApp crea la aplicación Fiber con su configuración y rutas
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    d.Config.BodyLimit,
		AppName:      "Citas API",
	})
	SetupRoutes(app, d)
	return app
}

// SetupRoutes configura todas las rutas de la aplicación
func SetupRoutes(app *fiber.App, d Deps) {
	// Middleware global
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggingMiddleware(d.Logger, d.Config.Environment))
	app.Use(d.Metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.TrimSpace(d.Config.CORSOrigins),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.SecurityHeaders())

	app.Get("/", handlers.Root)
	app.Get("/health", handlers.Health(d.Store))
	app.Get("/metrics", d.Metrics.Handler())

	// --- RUTAS DE CITAS ---
	h := handlers.NewCitaHandler(metrics.InstrumentStore(d.Store, d.Metrics), d.Logger)

	citas := app.Group("/citas", middleware.CreateRateLimiter(middleware.RateLimitConfig{
		Max:        d.Config.RateLimitMax,
		Expiration: d.Config.RateLimitWindow,
	}))
	citas.Post("/", h.CrearCita)
	citas.Get("/", h.ObtenerCitas)
	citas.Get("/:id", h.ObtenerCitaPorID)
	citas.Put("/:id", h.ActualizarCita)
	citas.Delete("/:id", h.EliminarCita)

	app.Use(metrics.Unmatched(handlers.NotFound))
}
