package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Create persiste un nuevo plan.
func (r *PlanRepo) Create(p *entity.Plan) error {
	query := `
		INSERT INTO planes (id, gym_id, nombre, descripcion, precio, duracion_dias, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.GymID, p.Nombre, p.Descripcion, p.Precio, p.DuracionDias, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID dentro del tenant.
func (r *PlanRepo) GetByID(id, gymID string) (*entity.Plan, error) {
	query := `
		SELECT id, gym_id, nombre, descripcion, precio, duracion_dias, created_at, updated_at
		FROM planes WHERE id = $1 AND gym_id = $2`
	var p entity.Plan
	err := r.q.QueryRow(context.Background(), query, id, gymID).Scan(
		&p.ID, &p.GymID, &p.Nombre, &p.Descripcion, &p.Precio, &p.DuracionDias, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// ListByGym lista los planes de un gimnasio.
func (r *PlanRepo) ListByGym(gymID string) ([]*entity.Plan, error) {
	query := `
		SELECT id, gym_id, nombre, descripcion, precio, duracion_dias, created_at, updated_at
		FROM planes WHERE gym_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, gymID)
	if err != nil {
		return nil, fmt.Errorf("list planes: %w", err)
	}
	defer rows.Close()

	var planes []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.GymID, &p.Nombre, &p.Descripcion, &p.Precio, &p.DuracionDias,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		planes = append(planes, &p)
	}
	return planes, rows.Err()
}

// Update actualiza un plan. La nueva duración no se propaga a socios existentes.
func (r *PlanRepo) Update(p *entity.Plan) error {
	query := `
		UPDATE planes SET nombre = $3, descripcion = $4, precio = $5, duracion_dias = $6, updated_at = $7
		WHERE id = $1 AND gym_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.GymID, p.Nombre, p.Descripcion, p.Precio, p.DuracionDias, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// Delete elimina un plan. Los socios que lo referencian quedan con la
// referencia colgante y caen en la duración por defecto del evaluador.
func (r *PlanRepo) Delete(id, gymID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM planes WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
