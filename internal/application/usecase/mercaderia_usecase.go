package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// MercaderiaUseCase CRUD de mercadería (contador simple, sin reservas).
type MercaderiaUseCase struct {
	repo repository.MercaderiaRepository
}

// NewMercaderiaUseCase construye el caso de uso.
func NewMercaderiaUseCase(repo repository.MercaderiaRepository) *MercaderiaUseCase {
	return &MercaderiaUseCase{repo: repo}
}

// Create da de alta un artículo.
func (uc *MercaderiaUseCase) Create(gymID string, in dto.CreateMercaderiaRequest) (*dto.MercaderiaResponse, error) {
	if in.Nombre == "" || in.PrecioUnitario == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioUnitario.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Mercaderia{
		ID:             uuid.New().String(),
		GymID:          gymID,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Stock:          in.Stock,
		PrecioUnitario: *in.PrecioUnitario,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMercaderiaResponse(m), nil
}

// List devuelve la mercadería del tenant.
func (uc *MercaderiaUseCase) List(gymID string) ([]dto.MercaderiaResponse, error) {
	items, err := uc.repo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MercaderiaResponse, 0, len(items))
	for _, m := range items {
		out = append(out, *toMercaderiaResponse(m))
	}
	return out, nil
}

// Update edición parcial: solo los campos presentes se tocan.
func (uc *MercaderiaUseCase) Update(gymID string, in dto.UpdateMercaderiaRequest) (*dto.MercaderiaResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.repo.GetByID(in.ID, gymID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		m.Descripcion = *in.Descripcion
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		m.Stock = *in.Stock
	}
	if in.PrecioUnitario != nil {
		if in.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.PrecioUnitario = *in.PrecioUnitario
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMercaderiaResponse(m), nil
}

// Delete borra un artículo del tenant.
func (uc *MercaderiaUseCase) Delete(gymID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	m, err := uc.repo.GetByID(id, gymID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, gymID)
}

func toMercaderiaResponse(m *entity.Mercaderia) *dto.MercaderiaResponse {
	return &dto.MercaderiaResponse{
		ID:             m.ID,
		Nombre:         m.Nombre,
		Descripcion:    m.Descripcion,
		Stock:          m.Stock,
		PrecioUnitario: m.PrecioUnitario,
	}
}
