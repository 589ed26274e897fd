package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
	"github.com/athletica/gym-api/pkg/jwt"
)

// EmpleadoUseCase gestión de empleados de un gimnasio (operación solo admin).
type EmpleadoUseCase struct {
	repo repository.EmpleadoRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo}
}

// Create da de alta un empleado en el tenant. Con email+password puede iniciar sesión.
func (uc *EmpleadoUseCase) Create(gymID string, in dto.CreateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.NombreCompleto == "" {
		return nil, domain.ErrInvalidInput
	}
	var hash string
	if in.Password != "" {
		if in.Email == "" {
			return nil, domain.ErrInvalidInput // password sin email no habilita login
		}
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	now := time.Now()
	emp := &entity.Empleado{
		ID:             uuid.New().String(),
		GymID:          gymID,
		NombreCompleto: in.NombreCompleto,
		Email:          in.Email,
		Telefono:       in.Telefono,
		Puesto:         in.Puesto,
		Activo:         true,
		Rol:            jwt.RolEmpleado,
		PasswordHash:   hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(emp), nil
}

// List devuelve los empleados del tenant.
func (uc *EmpleadoUseCase) List(gymID string) ([]dto.EmpleadoResponse, error) {
	emps, err := uc.repo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, *toEmpleadoResponse(e))
	}
	return out, nil
}

// Update edita un empleado del tenant; 404 si no existe o pertenece a otro gimnasio.
func (uc *EmpleadoUseCase) Update(gymID string, in dto.UpdateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.GymID != gymID {
		return nil, domain.ErrNotFound
	}
	if in.NombreCompleto != "" {
		emp.NombreCompleto = in.NombreCompleto
	}
	emp.Email = in.Email
	emp.Telefono = in.Telefono
	emp.Puesto = in.Puesto
	if in.Activo != nil {
		emp.Activo = *in.Activo
	}
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		emp.PasswordHash = string(h)
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(emp), nil
}

// Delete borra un empleado del tenant.
func (uc *EmpleadoUseCase) Delete(gymID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil || emp.GymID != gymID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, gymID)
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:             e.ID,
		NombreCompleto: e.NombreCompleto,
		Email:          e.Email,
		Telefono:       e.Telefono,
		Puesto:         e.Puesto,
		Activo:         e.Activo,
		CreatedAt:      e.CreatedAt,
	}
}
