package repository

import "github.com/athletica/gym-api/internal/domain/entity"

// RutinaRepository define el puerto de persistencia para rutinas de entrenamiento.
type RutinaRepository interface {
	Create(r *entity.Rutina) error
	GetByID(id, gymID string) (*entity.Rutina, error)
	ListByGym(gymID string) ([]*entity.Rutina, error)
	Update(r *entity.Rutina) error
	Delete(id, gymID string) error
}
