package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lizet96/citas-backend/models"
)

const esquemaCitas = `
CREATE TABLE IF NOT EXISTS citas (
	id          CHAR(24) PRIMARY KEY,
	nombre      TEXT NOT NULL CHECK (nombre <> ''),
	correo      TEXT NOT NULL CHECK (correo <> ''),
	fecha       TIMESTAMPTZ NOT NULL,
	hora        TEXT NOT NULL CHECK (hora <> ''),
	descripcion TEXT NOT NULL DEFAULT ''
)`

const columnasCita = `id, nombre, correo, fecha, hora, descripcion`

// orden fijo de columnas actualizables
var columnasActualizables = []string{"nombre", "correo", "fecha", "hora", "descripcion"}

// PostgresStore implementa CitaStore sobre la tabla citas. Los ids se
// guardan como el hex del ObjectID para que las respuestas sean iguales
// a las del driver de MongoDB.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrar crea la tabla citas si no existe
func (s *PostgresStore) Migrar(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, esquemaCitas); err != nil {
		return infra("migrar esquema", err)
	}
	return nil
}

func (s *PostgresStore) Crear(ctx context.Context, req models.CitaRequest) (*models.Cita, error) {
	if err := validar(req, false); err != nil {
		return nil, err
	}
	c := models.NuevaCita(req)

	_, err := s.pool.Exec(ctx,
		`INSERT INTO citas (`+columnasCita+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID.Hex(), c.Nombre, c.Correo, c.Fecha, c.Hora, c.Descripcion,
	)
	if err != nil {
		return nil, infra("insertar cita", err)
	}
	return &c, nil
}

func (s *PostgresStore) Listar(ctx context.Context) ([]models.Cita, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+columnasCita+` FROM citas ORDER BY id`)
	if err != nil {
		return nil, infra("listar citas", err)
	}
	defer rows.Close()

	citas := []models.Cita{}
	for rows.Next() {
		c, err := scanCita(rows)
		if err != nil {
			return nil, infra("leer citas", err)
		}
		citas = append(citas, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("leer citas", err)
	}
	return citas, nil
}

func (s *PostgresStore) ObtenerPorID(ctx context.Context, id string) (*models.Cita, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, ErrNotFound
	}

	row := s.pool.QueryRow(ctx, `SELECT `+columnasCita+` FROM citas WHERE id = $1`, id)
	c, err := scanCita(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, infra("obtener cita", err)
	}
	return c, nil
}

func (s *PostgresStore) Actualizar(ctx context.Context, id string, req models.CitaRequest) (*models.Cita, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, ErrNotFound
	}
	if err := validar(req, true); err != nil {
		return nil, err
	}

	cambios := req.Cambios()
	if len(cambios) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	query, args := construirUpdate(id, cambios)
	c, err := scanCita(s.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, infra("actualizar cita", err)
	}
	return c, nil
}

func (s *PostgresStore) Eliminar(ctx context.Context, id string) error {
	if !primitive.IsValidObjectID(id) {
		return ErrNotFound
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM citas WHERE id = $1`, id)
	if err != nil {
		return infra("eliminar cita", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return infra("ping postgres", err)
	}
	return nil
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// construirUpdate arma el UPDATE parcial con placeholders numerados en el
// orden de columnasActualizables; el id ocupa el último placeholder.
func construirUpdate(id string, cambios map[string]any) (string, []any) {
	var sets []string
	var args []any
	argIndex := 1
	for _, col := range columnasActualizables {
		v, ok := cambios[col]
		if !ok {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIndex))
		args = append(args, v)
		argIndex++
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE citas SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIndex, columnasCita)
	return query, args
}

func scanCita(row pgx.Row) (*models.Cita, error) {
	var (
		c  models.Cita
		id string
	)
	if err := row.Scan(&id, &c.Nombre, &c.Correo, &c.Fecha, &c.Hora, &c.Descripcion); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("id %q: %w", id, err)
	}
	c.ID = oid
	c.Fecha = c.Fecha.UTC()
	return &c, nil
}
