package repository

import "github.com/athletica/gym-api/internal/domain/entity"

// SocioRepository define el puerto de persistencia para socios.
// Documento es la clave natural dentro del tenant; Create devuelve
// domain.ErrDocumentoDuplicado si ya existe.
type SocioRepository interface {
	Create(s *entity.Socio) error
	GetByID(id, gymID string) (*entity.Socio, error)
	GetByDocumento(documento, gymID string) (*entity.Socio, error)
	ListByGym(gymID string) ([]*entity.Socio, error)
	Update(s *entity.Socio) error
	// UpdateActivo corrige únicamente el flag almacenado (corrección de lectura).
	UpdateActivo(id string, activo bool) error
	DeleteByDocumento(documento, gymID string) error
}
