package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de caja.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, gym_id, tipo, descripcion, monto, fecha, socio_id, empleado_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.GymID, m.Tipo, m.Descripcion, m.Monto, m.Fecha,
		nullable(m.SocioID), nullable(m.EmpleadoID), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID dentro del tenant.
func (r *MovimientoRepo) GetByID(id, gymID string) (*entity.Movimiento, error) {
	query := `
		SELECT id, gym_id, tipo, descripcion, monto, fecha, socio_id, empleado_id, created_at
		FROM movimientos WHERE id = $1 AND gym_id = $2`
	m, err := scanMovimiento(r.q.QueryRow(context.Background(), query, id, gymID).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// ListByGym lista los movimientos del tenant aplicando los filtros opcionales,
// del más reciente al más antiguo.
func (r *MovimientoRepo) ListByGym(gymID string, filtro repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, gym_id, tipo, descripcion, monto, fecha, socio_id, empleado_id, created_at
		FROM movimientos WHERE gym_id = $1`
	args := []any{gymID}

	if filtro.Tipo != "" {
		args = append(args, filtro.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	if filtro.SocioID != "" {
		args = append(args, filtro.SocioID)
		query += fmt.Sprintf(" AND socio_id = $%d", len(args))
	}
	if filtro.FechaDesde != nil {
		args = append(args, *filtro.FechaDesde)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if filtro.FechaHasta != nil {
		args = append(args, *filtro.FechaHasta)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}
	query += " ORDER BY fecha DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var movimientos []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movimientos = append(movimientos, m)
	}
	return movimientos, rows.Err()
}

// Update actualiza un movimiento existente (solo admin a nivel handler).
func (r *MovimientoRepo) Update(m *entity.Movimiento) error {
	query := `
		UPDATE movimientos SET tipo = $3, descripcion = $4, monto = $5, fecha = $6, socio_id = $7
		WHERE id = $1 AND gym_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.GymID, m.Tipo, m.Descripcion, m.Monto, m.Fecha, nullable(m.SocioID),
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	return nil
}

// Delete elimina un movimiento del tenant indicado.
func (r *MovimientoRepo) Delete(id, gymID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movimientos WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

// GetBalance agrega ingresos y egresos como fold en SQL. No existe un
// total almacenado que pueda derivar entre escritores concurrentes.
func (r *MovimientoRepo) GetBalance(ctx context.Context, gymID string, desde, hasta *time.Time) (*repository.Balance, error) {
	query := `
		SELECT
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'ingreso'), 0) AS ingresos,
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'egreso'), 0)  AS egresos
		FROM movimientos WHERE gym_id = $1`
	args := []any{gymID}

	if desde != nil {
		args = append(args, *desde)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if hasta != nil {
		args = append(args, *hasta)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}

	var b repository.Balance
	if err := r.q.QueryRow(ctx, query, args...).Scan(&b.Ingresos, &b.Egresos); err != nil {
		return nil, fmt.Errorf("balance de caja: %w", err)
	}
	b.Total = b.Ingresos.Sub(b.Egresos)
	return &b, nil
}

func scanMovimiento(scan func(dest ...any) error) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var socioID, empleadoID *string
	err := scan(&m.ID, &m.GymID, &m.Tipo, &m.Descripcion, &m.Monto, &m.Fecha,
		&socioID, &empleadoID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if socioID != nil {
		m.SocioID = *socioID
	}
	if empleadoID != nil {
		m.EmpleadoID = *empleadoID
	}
	return &m, nil
}
