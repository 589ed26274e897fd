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

var _ repository.SocioRepository = (*SocioRepo)(nil)

// SocioRepo implementación del puerto SocioRepository sobre PostgreSQL.
type SocioRepo struct {
	q Querier
}

// NewSocioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSocioRepository(q Querier) *SocioRepo {
	return &SocioRepo{q: q}
}

const socioColumns = `id, gym_id, documento, nombre_completo, fecha_nacimiento, telefono, email,
	direccion, contacto_emergencia, plan_id, activo, fecha_alta, foto_url, rutina_id, created_at, updated_at`

// Create persiste un nuevo socio. El índice único (gym_id, documento)
// hace cumplir la clave natural dentro del tenant.
func (r *SocioRepo) Create(s *entity.Socio) error {
	query := `
		INSERT INTO socios (` + socioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.GymID, s.Documento, s.NombreCompleto, s.FechaNacimiento, s.Telefono, s.Email,
		s.Direccion, s.ContactoEmergencia, nullable(s.PlanID), s.Activo, s.FechaAlta, s.FotoURL,
		nullable(s.RutinaID), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocumentoDuplicado
		}
		return fmt.Errorf("insert socio: %w", err)
	}
	return nil
}

// GetByID obtiene un socio por ID dentro del tenant.
func (r *SocioRepo) GetByID(id, gymID string) (*entity.Socio, error) {
	query := `SELECT ` + socioColumns + ` FROM socios WHERE id = $1 AND gym_id = $2`
	return scanSocio(r.q.QueryRow(context.Background(), query, id, gymID))
}

// GetByDocumento obtiene un socio por su documento dentro del tenant.
func (r *SocioRepo) GetByDocumento(documento, gymID string) (*entity.Socio, error) {
	query := `SELECT ` + socioColumns + ` FROM socios WHERE documento = $1 AND gym_id = $2`
	return scanSocio(r.q.QueryRow(context.Background(), query, documento, gymID))
}

// ListByGym lista los socios de un gimnasio.
func (r *SocioRepo) ListByGym(gymID string) ([]*entity.Socio, error) {
	query := `SELECT ` + socioColumns + ` FROM socios WHERE gym_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, gymID)
	if err != nil {
		return nil, fmt.Errorf("list socios: %w", err)
	}
	defer rows.Close()

	var socios []*entity.Socio
	for rows.Next() {
		s, err := scanSocioRow(rows)
		if err != nil {
			return nil, err
		}
		socios = append(socios, s)
	}
	return socios, rows.Err()
}

// Update actualiza un socio existente.
func (r *SocioRepo) Update(s *entity.Socio) error {
	query := `
		UPDATE socios SET documento = $3, nombre_completo = $4, fecha_nacimiento = $5, telefono = $6,
			email = $7, direccion = $8, contacto_emergencia = $9, plan_id = $10, activo = $11,
			fecha_alta = $12, foto_url = $13, rutina_id = $14, updated_at = $15
		WHERE id = $1 AND gym_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.GymID, s.Documento, s.NombreCompleto, s.FechaNacimiento, s.Telefono, s.Email,
		s.Direccion, s.ContactoEmergencia, nullable(s.PlanID), s.Activo, s.FechaAlta, s.FotoURL,
		nullable(s.RutinaID), s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocumentoDuplicado
		}
		return fmt.Errorf("update socio: %w", err)
	}
	return nil
}

// UpdateActivo corrige únicamente el flag almacenado (corrección de lectura).
func (r *SocioRepo) UpdateActivo(id string, activo bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE socios SET activo = $2, updated_at = now() WHERE id = $1`, id, activo)
	if err != nil {
		return fmt.Errorf("update socio activo: %w", err)
	}
	return nil
}

// DeleteByDocumento elimina un socio por su documento dentro del tenant.
func (r *SocioRepo) DeleteByDocumento(documento, gymID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM socios WHERE documento = $1 AND gym_id = $2`, documento, gymID)
	if err != nil {
		return fmt.Errorf("delete socio: %w", err)
	}
	return nil
}

// nullable convierte "" en NULL para columnas con FK opcional.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanSocio(row pgx.Row) (*entity.Socio, error) {
	s, err := scanSocioFields(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get socio: %w", err)
	}
	return s, nil
}

func scanSocioRow(rows pgx.Rows) (*entity.Socio, error) {
	s, err := scanSocioFields(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("scan socio: %w", err)
	}
	return s, nil
}

func scanSocioFields(scan func(dest ...any) error) (*entity.Socio, error) {
	var s entity.Socio
	var planID, rutinaID *string
	err := scan(&s.ID, &s.GymID, &s.Documento, &s.NombreCompleto, &s.FechaNacimiento, &s.Telefono,
		&s.Email, &s.Direccion, &s.ContactoEmergencia, &planID, &s.Activo, &s.FechaAlta, &s.FotoURL,
		&rutinaID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if planID != nil {
		s.PlanID = *planID
	}
	if rutinaID != nil {
		s.RutinaID = *rutinaID
	}
	return &s, nil
}
