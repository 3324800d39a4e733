package store

import (
	"errors"
	"fmt"

	"github.com/lizet96/citas-backend/models"
)

// ErrNotFound se devuelve cuando no existe una cita con el id dado o el id está mal formado
var ErrNotFound = errors.New("Cita no encontrada")

// ValidationError indica que los datos de la cita no cumplen el esquema
type ValidationError struct {
	Validacion models.Validacion
}

func (e *ValidationError) Error() string {
	return "Cita inválida: " + e.Validacion.String()
}

// InfraError envuelve fallas del almacenamiento (conexión, driver, consultas)
type InfraError struct {
	Op  string
	Err error
}

func (e *InfraError) Error() string {
	return fmt.Sprintf("error en %s: %v", e.Op, e.Err)
}

func (e *InfraError) Unwrap() error { return e.Err }

func infra(op string, err error) error {
	return &InfraError{Op: op, Err: err}
}

func validar(req models.CitaRequest, parcial bool) error {
	if v := models.ValidarCita(req, parcial); !v.Valida() {
		return &ValidationError{Validacion: v}
	}
	return nil
}
