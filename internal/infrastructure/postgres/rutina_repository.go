package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

var _ repository.RutinaRepository = (*RutinaRepo)(nil)

// RutinaRepo implementación del puerto RutinaRepository sobre PostgreSQL.
// Los días de la rutina se persisten como JSONB.
type RutinaRepo struct {
	q Querier
}

// NewRutinaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRutinaRepository(q Querier) *RutinaRepo {
	return &RutinaRepo{q: q}
}

// Create persiste una rutina.
func (r *RutinaRepo) Create(rt *entity.Rutina) error {
	dias, err := json.Marshal(rt.Dias)
	if err != nil {
		return fmt.Errorf("marshal dias: %w", err)
	}
	query := `
		INSERT INTO rutinas (id, gym_id, nombre, descripcion, dias, creado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		rt.ID, rt.GymID, rt.Nombre, rt.Descripcion, dias, rt.CreadoPor, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rutina: %w", err)
	}
	return nil
}

// GetByID obtiene una rutina por ID dentro del tenant.
func (r *RutinaRepo) GetByID(id, gymID string) (*entity.Rutina, error) {
	query := `
		SELECT id, gym_id, nombre, descripcion, dias, creado_por, created_at, updated_at
		FROM rutinas WHERE id = $1 AND gym_id = $2`
	rt, err := scanRutina(r.q.QueryRow(context.Background(), query, id, gymID).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rutina: %w", err)
	}
	return rt, nil
}

// ListByGym lista las rutinas de un gimnasio.
func (r *RutinaRepo) ListByGym(gymID string) ([]*entity.Rutina, error) {
	query := `
		SELECT id, gym_id, nombre, descripcion, dias, creado_por, created_at, updated_at
		FROM rutinas WHERE gym_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, gymID)
	if err != nil {
		return nil, fmt.Errorf("list rutinas: %w", err)
	}
	defer rows.Close()

	var rutinas []*entity.Rutina
	for rows.Next() {
		rt, err := scanRutina(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan rutina: %w", err)
		}
		rutinas = append(rutinas, rt)
	}
	return rutinas, rows.Err()
}

// Update actualiza una rutina existente.
func (r *RutinaRepo) Update(rt *entity.Rutina) error {
	dias, err := json.Marshal(rt.Dias)
	if err != nil {
		return fmt.Errorf("marshal dias: %w", err)
	}
	query := `
		UPDATE rutinas SET nombre = $3, descripcion = $4, dias = $5, updated_at = $6
		WHERE id = $1 AND gym_id = $2`
	_, err = r.q.Exec(context.Background(), query,
		rt.ID, rt.GymID, rt.Nombre, rt.Descripcion, dias, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rutina: %w", err)
	}
	return nil
}

// Delete elimina una rutina. Los socios que la tenían asignada quedan sin rutina.
func (r *RutinaRepo) Delete(id, gymID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM rutinas WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return fmt.Errorf("delete rutina: %w", err)
	}
	return nil
}

func scanRutina(scan func(dest ...any) error) (*entity.Rutina, error) {
	var rt entity.Rutina
	var dias []byte
	err := scan(&rt.ID, &rt.GymID, &rt.Nombre, &rt.Descripcion, &dias, &rt.CreadoPor,
		&rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(dias) > 0 {
		if err := json.Unmarshal(dias, &rt.Dias); err != nil {
			return nil, fmt.Errorf("unmarshal dias: %w", err)
		}
	}
	return &rt, nil
}
