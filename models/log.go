package models

// LogEntry representa una petición HTTP registrada por el middleware de logging
type LogEntry struct {
	Method       string
	Path         string
	Route        string
	StatusCode   int
	ResponseTime int // milisegundos
	IP           string
	UserAgent    string
	RequestID    string
	Body         string
	Query        string
	LogLevel     string
	Environment  string
}

// Constantes para niveles de log
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
	LogLevelDebug   = "debug"
	LogLevelSuccess = "success"
)

// Constantes para ambientes
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentTesting     = "testing"
)
