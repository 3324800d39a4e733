package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lizet96/citas-backend/models"
)

func str(s string) *string { return &s }

func requestValida(nombre string) models.CitaRequest {
	return models.CitaRequest{
		Nombre:      str(nombre),
		Correo:      str("paciente@example.com"),
		Fecha:       str("2025-06-01"),
		Hora:        str("09:00"),
		Descripcion: str("revisión general"),
	}
}

// probarContrato ejercita la semántica común a todos los drivers de CitaStore
func probarContrato(t *testing.T, s CitaStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("crear y obtener", func(t *testing.T) {
		req := requestValida("Carlos")
		req.Fecha = str("2025-06-01T10:00:00.123456789Z")
		creada, err := s.Crear(ctx, req)
		if err != nil {
			t.Fatalf("crear: %v", err)
		}
		if creada.ID.IsZero() {
			t.Fatal("empty id")
		}

		got, err := s.ObtenerPorID(ctx, creada.ID.Hex())
		if err != nil {
			t.Fatalf("obtener: %v", err)
		}
		if got.ID != creada.ID || got.Nombre != "Carlos" || got.Hora != "09:00" || got.Descripcion != "revisión general" {
			t.Errorf("round trip mismatch: %+v vs %+v", got, creada)
		}
		if !got.Fecha.Equal(creada.Fecha) {
			t.Errorf("fecha mismatch: %v vs %v", got.Fecha, creada.Fecha)
		}
	})

	t.Run("crear inválida", func(t *testing.T) {
		req := requestValida("Sin correo")
		req.Correo = nil
		_, err := s.Crear(ctx, req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("listar", func(t *testing.T) {
		a, err := s.Crear(ctx, requestValida("Lista A"))
		if err != nil {
			t.Fatalf("crear: %v", err)
		}
		b, err := s.Crear(ctx, requestValida("Lista B"))
		if err != nil {
			t.Fatalf("crear: %v", err)
		}
		if err := s.Eliminar(ctx, b.ID.Hex()); err != nil {
			t.Fatalf("eliminar: %v", err)
		}

		citas, err := s.Listar(ctx)
		if err != nil {
			t.Fatalf("listar: %v", err)
		}
		ids := make(map[primitive.ObjectID]bool, len(citas))
		for _, c := range citas {
			ids[c.ID] = true
		}
		if !ids[a.ID] {
			t.Error("created cita missing from list")
		}
		if ids[b.ID] {
			t.Error("deleted cita still listed")
		}
	})

	t.Run("actualizar parcial", func(t *testing.T) {
		creada, err := s.Crear(ctx, requestValida("Original"))
		if err != nil {
			t.Fatalf("crear: %v", err)
		}

		act, err := s.Actualizar(ctx, creada.ID.Hex(), models.CitaRequest{
			Nombre: str("Actualizada"),
			Fecha:  str("2025-07-15T16:30:00Z"),
		})
		if err != nil {
			t.Fatalf("actualizar: %v", err)
		}
		if act.ID != creada.ID {
			t.Error("id changed on update")
		}
		if act.Nombre != "Actualizada" || act.Correo != creada.Correo || act.Hora != creada.Hora {
			t.Errorf("unexpected updated record: %+v", act)
		}

		got, err := s.ObtenerPorID(ctx, creada.ID.Hex())
		if err != nil {
			t.Fatalf("obtener: %v", err)
		}
		if got.Nombre != "Actualizada" || got.Fecha.Hour() != 16 {
			t.Errorf("update not persisted: %+v", got)
		}
	})

	t.Run("actualizar inválida", func(t *testing.T) {
		creada, err := s.Crear(ctx, requestValida("Valida"))
		if err != nil {
			t.Fatalf("crear: %v", err)
		}
		_, err = s.Actualizar(ctx, creada.ID.Hex(), models.CitaRequest{Hora: str("")})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("actualizar sin campos", func(t *testing.T) {
		creada, err := s.Crear(ctx, requestValida("Sin cambios"))
		if err != nil {
			t.Fatalf("crear: %v", err)
		}

		got, err := s.Actualizar(ctx, creada.ID.Hex(), models.CitaRequest{})
		if err != nil {
			t.Fatalf("actualizar: %v", err)
		}
		if got.ID != creada.ID || got.Nombre != creada.Nombre || got.Correo != creada.Correo ||
			got.Hora != creada.Hora || got.Descripcion != creada.Descripcion || !got.Fecha.Equal(creada.Fecha) {
			t.Errorf("empty update should return the current record: %+v vs %+v", got, creada)
		}

		ausente := primitive.NewObjectID().Hex()
		if _, err := s.Actualizar(ctx, ausente, models.CitaRequest{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("empty update on absent id: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("no encontrada", func(t *testing.T) {
		ausente := primitive.NewObjectID().Hex()
		for _, id := range []string{ausente, "no-es-un-id"} {
			if _, err := s.ObtenerPorID(ctx, id); !errors.Is(err, ErrNotFound) {
				t.Errorf("obtener %s: expected ErrNotFound, got %v", id, err)
			}
			if _, err := s.Actualizar(ctx, id, requestValida("X")); !errors.Is(err, ErrNotFound) {
				t.Errorf("actualizar %s: expected ErrNotFound, got %v", id, err)
			}
			if err := s.Eliminar(ctx, id); !errors.Is(err, ErrNotFound) {
				t.Errorf("eliminar %s: expected ErrNotFound, got %v", id, err)
			}
		}
	})

	t.Run("eliminar", func(t *testing.T) {
		creada, err := s.Crear(ctx, requestValida("Borrar"))
		if err != nil {
			t.Fatalf("crear: %v", err)
		}
		if err := s.Eliminar(ctx, creada.ID.Hex()); err != nil {
			t.Fatalf("eliminar: %v", err)
		}
		if _, err := s.ObtenerPorID(ctx, creada.ID.Hex()); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := s.Eliminar(ctx, creada.ID.Hex()); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete: expected ErrNotFound, got %v", err)
		}
	})
}
