package metrics

import (
	"context"

	"github.com/lizet96/citas-backend/models"
	"github.com/lizet96/citas-backend/store"
)

type instrumentedStore struct {
	store.CitaStore
	m *Manager
}

// InstrumentStore envuelve s para contar cada operación en m
func InstrumentStore(s store.CitaStore, m *Manager) store.CitaStore {
	return &instrumentedStore{CitaStore: s, m: m}
}

func (s *instrumentedStore) Crear(ctx context.Context, req models.CitaRequest) (*models.Cita, error) {
	c, err := s.CitaStore.Crear(ctx, req)
	s.m.ObserveStore("crear", err)
	return c, err
}

func (s *instrumentedStore) Listar(ctx context.Context) ([]models.Cita, error) {
	citas, err := s.CitaStore.Listar(ctx)
	s.m.ObserveStore("listar", err)
	return citas, err
}

func (s *instrumentedStore) ObtenerPorID(ctx context.Context, id string) (*models.Cita, error) {
	c, err := s.CitaStore.ObtenerPorID(ctx, id)
	s.m.ObserveStore("obtener", err)
	return c, err
}

func (s *instrumentedStore) Actualizar(ctx context.Context, id string, req models.CitaRequest) (*models.Cita, error) {
	c, err := s.CitaStore.Actualizar(ctx, id, req)
	s.m.ObserveStore("actualizar", err)
	return c, err
}

func (s *instrumentedStore) Eliminar(ctx context.Context, id string) error {
	err := s.CitaStore.Eliminar(ctx, id)
	s.m.ObserveStore("eliminar", err)
	return err
}
