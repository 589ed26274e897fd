package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// RutinaUseCase CRUD de rutinas de entrenamiento.
type RutinaUseCase struct {
	repo repository.RutinaRepository
}

// NewRutinaUseCase construye el caso de uso.
func NewRutinaUseCase(repo repository.RutinaRepository) *RutinaUseCase {
	return &RutinaUseCase{repo: repo}
}

// Create da de alta una rutina. Dias debe venir (puede ser una lista vacía).
func (uc *RutinaUseCase) Create(gymID, creadoPor string, in dto.CreateRutinaRequest) (*dto.RutinaResponse, error) {
	if in.Nombre == "" || in.Dias == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Rutina{
		ID:          uuid.New().String(),
		GymID:       gymID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Dias:        in.Dias,
		CreadoPor:   creadoPor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toRutinaResponse(r), nil
}

// List devuelve las rutinas del tenant, más recientes primero.
func (uc *RutinaUseCase) List(gymID string) ([]dto.RutinaResponse, error) {
	rutinas, err := uc.repo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RutinaResponse, 0, len(rutinas))
	for _, r := range rutinas {
		out = append(out, *toRutinaResponse(r))
	}
	return out, nil
}

// Update reemplaza nombre, descripción y días de una rutina.
func (uc *RutinaUseCase) Update(gymID string, in dto.UpdateRutinaRequest) (*dto.RutinaResponse, error) {
	if in.ID == "" || in.Nombre == "" || in.Dias == nil {
		return nil, domain.ErrInvalidInput
	}
	r, err := uc.repo.GetByID(in.ID, gymID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.Nombre = in.Nombre
	r.Descripcion = in.Descripcion
	r.Dias = in.Dias
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toRutinaResponse(r), nil
}

// Delete borra una rutina del tenant.
func (uc *RutinaUseCase) Delete(gymID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	r, err := uc.repo.GetByID(id, gymID)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, gymID)
}

func toRutinaResponse(r *entity.Rutina) *dto.RutinaResponse {
	return &dto.RutinaResponse{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Dias:        r.Dias,
		CreadoPor:   r.CreadoPor,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
