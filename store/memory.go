package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lizet96/citas-backend/models"
)

// MemoryStore guarda las citas en memoria del proceso
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[primitive.ObjectID]models.Cita
	orden []primitive.ObjectID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[primitive.ObjectID]models.Cita)}
}

func (s *MemoryStore) Crear(_ context.Context, req models.CitaRequest) (*models.Cita, error) {
	if err := validar(req, false); err != nil {
		return nil, err
	}
	c := models.NuevaCita(req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[c.ID] = c
	s.orden = append(s.orden, c.ID)
	return &c, nil
}

func (s *MemoryStore) Listar(_ context.Context) ([]models.Cita, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Cita, 0, len(s.orden))
	for _, id := range s.orden {
		out = append(out, s.data[id])
	}
	return out, nil
}

func (s *MemoryStore) ObtenerPorID(_ context.Context, id string) (*models.Cita, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) Actualizar(_ context.Context, id string, req models.CitaRequest) (*models.Cita, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := validar(req, true); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data[oid]
	if !ok {
		return nil, ErrNotFound
	}
	req.AplicarA(&c)
	s.data[oid] = c
	return &c, nil
}

func (s *MemoryStore) Eliminar(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[oid]; !ok {
		return ErrNotFound
	}
	delete(s.data, oid)
	for i, o := range s.orden {
		if o == oid {
			s.orden = append(s.orden[:i], s.orden[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }
