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

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación del puerto EmpleadoRepository sobre PostgreSQL.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// Create persiste un nuevo empleado. Email es único a nivel plataforma
// porque es la credencial de login.
func (r *EmpleadoRepo) Create(e *entity.Empleado) error {
	query := `
		INSERT INTO empleados (id, gym_id, nombre_completo, email, telefono, puesto, activo, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.GymID, e.NombreCompleto, e.Email, e.Telefono, e.Puesto, e.Activo, e.PasswordHash,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	query := `
		SELECT id, gym_id, nombre_completo, email, telefono, puesto, activo, password_hash, created_at, updated_at
		FROM empleados WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmail obtiene un empleado por email (login).
func (r *EmpleadoRepo) GetByEmail(email string) (*entity.Empleado, error) {
	query := `
		SELECT id, gym_id, nombre_completo, email, telefono, puesto, activo, password_hash, created_at, updated_at
		FROM empleados WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// ListByGym lista los empleados de un gimnasio.
func (r *EmpleadoRepo) ListByGym(gymID string) ([]*entity.Empleado, error) {
	query := `
		SELECT id, gym_id, nombre_completo, email, telefono, puesto, activo, password_hash, created_at, updated_at
		FROM empleados WHERE gym_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, gymID)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()

	var empleados []*entity.Empleado
	for rows.Next() {
		var e entity.Empleado
		if err := rows.Scan(&e.ID, &e.GymID, &e.NombreCompleto, &e.Email, &e.Telefono, &e.Puesto,
			&e.Activo, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		e.Rol = "empleado"
		empleados = append(empleados, &e)
	}
	return empleados, rows.Err()
}

// Update actualiza un empleado existente.
func (r *EmpleadoRepo) Update(e *entity.Empleado) error {
	query := `
		UPDATE empleados SET nombre_completo = $2, email = $3, telefono = $4, puesto = $5, activo = $6, password_hash = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.NombreCompleto, e.Email, e.Telefono, e.Puesto, e.Activo, e.PasswordHash, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// Delete elimina un empleado del tenant indicado.
func (r *EmpleadoRepo) Delete(id, gymID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM empleados WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	return nil
}

func (r *EmpleadoRepo) scanOne(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	err := row.Scan(&e.ID, &e.GymID, &e.NombreCompleto, &e.Email, &e.Telefono, &e.Puesto,
		&e.Activo, &e.PasswordHash, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	e.Rol = "empleado"
	return &e, nil
}
