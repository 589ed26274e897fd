package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// PlanUseCase CRUD de planes de membresía.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// Create da de alta un plan en el tenant.
func (uc *PlanUseCase) Create(gymID string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if in.Nombre == "" || in.Precio == nil || in.DuracionDias == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() || *in.DuracionDias <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	plan := &entity.Plan{
		ID:           uuid.New().String(),
		GymID:        gymID,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Precio:       *in.Precio,
		DuracionDias: *in.DuracionDias,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// List devuelve los planes del tenant.
func (uc *PlanUseCase) List(gymID string) ([]dto.PlanResponse, error) {
	planes, err := uc.repo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(planes))
	for _, p := range planes {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// Update edita un plan. La nueva duración rige para las próximas evaluaciones
// de membresía; no se propaga nada a los socios existentes.
func (uc *PlanUseCase) Update(gymID string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if in.ID == "" || in.Nombre == "" || in.Precio == nil || in.DuracionDias == nil {
		return nil, domain.ErrInvalidInput
	}
	plan, err := uc.repo.GetByID(in.ID, gymID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	plan.Nombre = in.Nombre
	plan.Descripcion = in.Descripcion
	plan.Precio = *in.Precio
	plan.DuracionDias = *in.DuracionDias
	plan.UpdatedAt = time.Now()
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// Delete borra un plan. Los socios que lo referencian quedan con plan
// inexistente: el evaluador cae a la duración por defecto.
func (uc *PlanUseCase) Delete(gymID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	plan, err := uc.repo.GetByID(id, gymID)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, gymID)
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		DuracionDias: p.DuracionDias,
	}
}
