// Package metrics expone métricas Prometheus del servicio de citas.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lizet96/citas-backend/store"
)

const namespace = "citas"

// UnmatchedRoute etiqueta las peticiones que no coinciden con ninguna ruta
const UnmatchedRoute = "unmatched"

const localUnmatched = "metrics_unmatched"

// Resultados de operaciones de almacenamiento
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Manager agrupa los colectores sobre un registro propio
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeOperations     *prometheus.CounterVec
}

// NewManager crea y registra los colectores. Con goCollectors se agregan
// las métricas del runtime de Go y del proceso.
func NewManager(goCollectors bool) *Manager {
	reg := prometheus.NewRegistry()
	m := &Manager{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Operaciones sobre el almacenamiento de citas por resultado.",
		}, []string{"operation", "result"}),
	}

	reg.MustRegister(m.httpRequests, m.httpRequestDuration, m.storeOperations)
	if goCollectors {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Registry devuelve el registro usado por el Manager
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware mide cada petición. La ruta se etiqueta con el patrón
// registrado (/citas/:id) para no multiplicar series por id.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := c.Route().Path
		if unmatched, _ := c.Locals(localUnmatched).(bool); unmatched {
			route = UnmatchedRoute
		}
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Unmatched envuelve el handler final de rutas inexistentes para que sus
// peticiones no compartan la etiqueta "/" con GET /.
func Unmatched(next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localUnmatched, true)
		return next(c)
	}
}

// Handler sirve la exposición de métricas en formato Prometheus
func (m *Manager) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObserveStore cuenta una operación de almacenamiento según su error
func (m *Manager) ObserveStore(op string, err error) {
	m.storeOperations.WithLabelValues(op, Result(err)).Inc()
}

// Result clasifica el error devuelto por un CitaStore
func Result(err error) string {
	var verr *store.ValidationError
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, store.ErrNotFound):
		return ResultNotFound
	case errors.As(err, &verr):
		return ResultInvalid
	default:
		return ResultError
	}
}
