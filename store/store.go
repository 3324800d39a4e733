// Package store contiene el acceso a datos de las citas.
//
// CitaStore es el contrato que consumen los handlers; cada driver
// (MongoDB, PostgreSQL, memoria) lo implementa con la misma semántica
// de errores: ErrNotFound, *ValidationError o *InfraError.
package store

import (
	"context"

	"github.com/lizet96/citas-backend/models"
)

// CitaStore define las operaciones de persistencia de citas
type CitaStore interface {
	Crear(ctx context.Context, req models.CitaRequest) (*models.Cita, error)
	Listar(ctx context.Context) ([]models.Cita, error)
	ObtenerPorID(ctx context.Context, id string) (*models.Cita, error)
	Actualizar(ctx context.Context, id string, req models.CitaRequest) (*models.Cita, error)
	Eliminar(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Drivers soportados
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)
