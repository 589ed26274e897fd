package repository

import "github.com/athletica/gym-api/internal/domain/entity"

// EmpleadoRepository define el puerto de persistencia para empleados.
type EmpleadoRepository interface {
	Create(e *entity.Empleado) error
	GetByID(id string) (*entity.Empleado, error)
	GetByEmail(email string) (*entity.Empleado, error)
	ListByGym(gymID string) ([]*entity.Empleado, error)
	Update(e *entity.Empleado) error
	Delete(id, gymID string) error
}
