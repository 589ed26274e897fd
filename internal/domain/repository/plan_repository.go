package repository

import "github.com/athletica/gym-api/internal/domain/entity"

// PlanRepository define el puerto de persistencia para planes de membresía.
// Todas las operaciones están delimitadas por gymID: un plan nunca es visible
// fuera de su tenant.
type PlanRepository interface {
	Create(p *entity.Plan) error
	GetByID(id, gymID string) (*entity.Plan, error)
	ListByGym(gymID string) ([]*entity.Plan, error)
	Update(p *entity.Plan) error
	Delete(id, gymID string) error
}
