package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

var _ repository.MercaderiaRepository = (*MercaderiaRepo)(nil)

// MercaderiaRepo implementación del puerto MercaderiaRepository sobre PostgreSQL.
type MercaderiaRepo struct {
	q Querier
}

// NewMercaderiaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMercaderiaRepository(q Querier) *MercaderiaRepo {
	return &MercaderiaRepo{q: q}
}

// Create persiste un artículo de mercadería.
func (r *MercaderiaRepo) Create(m *entity.Mercaderia) error {
	query := `
		INSERT INTO mercaderia (id, gym_id, nombre, descripcion, stock, precio_unitario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.GymID, m.Nombre, m.Descripcion, m.Stock, m.PrecioUnitario, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mercaderia: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID dentro del tenant.
func (r *MercaderiaRepo) GetByID(id, gymID string) (*entity.Mercaderia, error) {
	query := `
		SELECT id, gym_id, nombre, descripcion, stock, precio_unitario, created_at, updated_at
		FROM mercaderia WHERE id = $1 AND gym_id = $2`
	var m entity.Mercaderia
	err := r.q.QueryRow(context.Background(), query, id, gymID).Scan(
		&m.ID, &m.GymID, &m.Nombre, &m.Descripcion, &m.Stock, &m.PrecioUnitario, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mercaderia: %w", err)
	}
	return &m, nil
}

// ListByGym lista la mercadería de un gimnasio.
func (r *MercaderiaRepo) ListByGym(gymID string) ([]*entity.Mercaderia, error) {
	query := `
		SELECT id, gym_id, nombre, descripcion, stock, precio_unitario, created_at, updated_at
		FROM mercaderia WHERE gym_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, gymID)
	if err != nil {
		return nil, fmt.Errorf("list mercaderia: %w", err)
	}
	defer rows.Close()

	var articulos []*entity.Mercaderia
	for rows.Next() {
		var m entity.Mercaderia
		if err := rows.Scan(&m.ID, &m.GymID, &m.Nombre, &m.Descripcion, &m.Stock, &m.PrecioUnitario,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mercaderia: %w", err)
		}
		articulos = append(articulos, &m)
	}
	return articulos, rows.Err()
}

// Update actualiza un artículo. El stock se pisa con el valor recibido,
// sin reservas ni chequeos de concurrencia.
func (r *MercaderiaRepo) Update(m *entity.Mercaderia) error {
	query := `
		UPDATE mercaderia SET nombre = $3, descripcion = $4, stock = $5, precio_unitario = $6, updated_at = $7
		WHERE id = $1 AND gym_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.GymID, m.Nombre, m.Descripcion, m.Stock, m.PrecioUnitario, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mercaderia: %w", err)
	}
	return nil
}

// Delete elimina un artículo del tenant indicado.
func (r *MercaderiaRepo) Delete(id, gymID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM mercaderia WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return fmt.Errorf("delete mercaderia: %w", err)
	}
	return nil
}
