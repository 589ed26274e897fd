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

var _ repository.GimnasioRepository = (*GimnasioRepo)(nil)

// GimnasioRepo implementación del puerto GimnasioRepository sobre PostgreSQL (usable con pool o tx).
type GimnasioRepo struct {
	q Querier
}

// NewGimnasioRepository construye el adaptador de persistencia para gimnasios. Pasar pool o tx (Querier).
func NewGimnasioRepository(q Querier) *GimnasioRepo {
	return &GimnasioRepo{q: q}
}

// Create persiste un nuevo gimnasio. Username es único a nivel plataforma.
func (r *GimnasioRepo) Create(g *entity.Gimnasio) error {
	query := `
		INSERT INTO gimnasios (id, username, password_hash, gym_name, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Username, g.PasswordHash, g.GymName, g.Activo, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert gimnasio: %w", err)
	}
	return nil
}

// GetByID obtiene un gimnasio por ID.
func (r *GimnasioRepo) GetByID(id string) (*entity.Gimnasio, error) {
	query := `
		SELECT id, username, password_hash, gym_name, activo, created_at, updated_at
		FROM gimnasios WHERE id = $1`
	var g entity.Gimnasio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Username, &g.PasswordHash, &g.GymName, &g.Activo, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gimnasio: %w", err)
	}
	g.Rol = "admin"
	return &g, nil
}

// GetByUsername obtiene un gimnasio por su username (login).
func (r *GimnasioRepo) GetByUsername(username string) (*entity.Gimnasio, error) {
	query := `
		SELECT id, username, password_hash, gym_name, activo, created_at, updated_at
		FROM gimnasios WHERE username = $1`
	var g entity.Gimnasio
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&g.ID, &g.Username, &g.PasswordHash, &g.GymName, &g.Activo, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gimnasio by username: %w", err)
	}
	g.Rol = "admin"
	return &g, nil
}

// List devuelve todos los gimnasios de la plataforma (solo superadmin).
func (r *GimnasioRepo) List() ([]*entity.Gimnasio, error) {
	query := `
		SELECT id, username, password_hash, gym_name, activo, created_at, updated_at
		FROM gimnasios ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list gimnasios: %w", err)
	}
	defer rows.Close()

	var gimnasios []*entity.Gimnasio
	for rows.Next() {
		var g entity.Gimnasio
		if err := rows.Scan(&g.ID, &g.Username, &g.PasswordHash, &g.GymName, &g.Activo, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gimnasio: %w", err)
		}
		g.Rol = "admin"
		gimnasios = append(gimnasios, &g)
	}
	return gimnasios, rows.Err()
}

// Update actualiza un gimnasio existente (incluye password_hash y baja lógica).
func (r *GimnasioRepo) Update(g *entity.Gimnasio) error {
	query := `
		UPDATE gimnasios SET username = $2, password_hash = $3, gym_name = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Username, g.PasswordHash, g.GymName, g.Activo, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update gimnasio: %w", err)
	}
	return nil
}

// Delete elimina un gimnasio en forma física. Los datos del tenant caen en cascada.
func (r *GimnasioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM gimnasios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gimnasio: %w", err)
	}
	return nil
}

// Count devuelve el total de gimnasios registrados.
func (r *GimnasioRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM gimnasios`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count gimnasios: %w", err)
	}
	return n, nil
}

// CountActivos devuelve cuántos gimnasios tienen la cuenta activa.
func (r *GimnasioRepo) CountActivos() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM gimnasios WHERE activo = true`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count gimnasios activos: %w", err)
	}
	return n, nil
}

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo persiste los super-administradores de la plataforma.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un super-administrador (usado por el seed inicial).
func (r *AdminRepo) Create(a *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Email, a.PasswordHash, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByEmail obtiene un super-administrador por email (login de plataforma).
func (r *AdminRepo) GetByEmail(email string) (*entity.Admin, error) {
	query := `SELECT id, email, password_hash, created_at FROM admins WHERE email = $1`
	var a entity.Admin
	err := r.q.QueryRow(context.Background(), query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return &a, nil
}
