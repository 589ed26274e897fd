package repository

import "github.com/athletica/gym-api/internal/domain/entity"

// MercaderiaRepository define el puerto de persistencia para mercadería.
type MercaderiaRepository interface {
	Create(m *entity.Mercaderia) error
	GetByID(id, gymID string) (*entity.Mercaderia, error)
	ListByGym(gymID string) ([]*entity.Mercaderia, error)
	Update(m *entity.Mercaderia) error
	Delete(id, gymID string) error
}
