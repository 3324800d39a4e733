// Package config carga la configuración del servicio.
//
// Orden de precedencia (de menor a mayor):
//  1. valores por defecto (New)
//  2. archivo YAML si CITAS_CONFIG está definido
//  3. variables de entorno (PORT, MONGO_URI, ...)
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lizet96/citas-backend/models"
	"github.com/lizet96/citas-backend/store"
)

// Config contiene la configuración del proceso
type Config struct {
	Port        string `koanf:"port"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	// StoreDriver selecciona el almacenamiento: mongo, postgres o memory.
	StoreDriver string `koanf:"store_driver"`

	MongoURI        string        `koanf:"mongo_uri"`
	MongoDB         string        `koanf:"mongo_db"`
	MongoCollection string        `koanf:"mongo_collection"`
	MongoTimeout    time.Duration `koanf:"mongo_timeout"`

	DatabaseURL string `koanf:"database_url"`

	CORSOrigins     string        `koanf:"cors_origins"`
	RateLimitMax    int           `koanf:"rate_limit_max"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	BodyLimit       int           `koanf:"body_limit"`
}

// New devuelve la configuración por defecto
func New() *Config {
	return &Config{
		Port:            "3000",
		Environment:     models.EnvironmentDevelopment,
		LogLevel:        "info",
		StoreDriver:     store.DriverMongo,
		MongoURI:        "mongodb://localhost:27017",
		MongoDB:         "citas",
		MongoCollection: "citas",
		MongoTimeout:    10 * time.Second,
		CORSOrigins:     "*",
		RateLimitMax:    100,
		RateLimitWindow: 15 * time.Minute,
		BodyLimit:       1 << 20,
	}
}

var (
	ErrPortRequired        = errors.New("El puerto no puede estar vacío")
	ErrUnknownDriver       = errors.New("store_driver desconocido")
	ErrDatabaseURLRequired = errors.New("DATABASE_URL es requerido para el driver postgres")
	ErrMongoURIRequired    = errors.New("MONGO_URI es requerido para el driver mongo")
)

// Load arma la configuración por capas. Las variables de un .env deben
// cargarse antes (godotenv) para que el proveedor de entorno las vea.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("CITAS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("leer %s: %w", path, err)
		}
	}

	// PORT -> port, MONGO_URI -> mongo_uri; las claves quedan planas
	envProvider := env.Provider("", ".", strings.ToLower)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa las combinaciones requeridas
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return ErrPortRequired
	}
	switch c.StoreDriver {
	case store.DriverMongo:
		if c.MongoURI == "" {
			return ErrMongoURIRequired
		}
	case store.DriverPostgres:
		if c.DatabaseURL == "" {
			return ErrDatabaseURLRequired
		}
	case store.DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.StoreDriver)
	}
	return nil
}

// Addr devuelve la dirección de escucha para Fiber
func (c *Config) Addr() string {
	return ":" + c.Port
}
