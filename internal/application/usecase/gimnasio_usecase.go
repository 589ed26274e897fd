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

// GimnasioUseCase alta, baja y edición de tenants (solo superadmin).
type GimnasioUseCase struct {
	repo repository.GimnasioRepository
}

// NewGimnasioUseCase construye el caso de uso.
func NewGimnasioUseCase(repo repository.GimnasioRepository) *GimnasioUseCase {
	return &GimnasioUseCase{repo: repo}
}

// Create da de alta un gimnasio: hashea el password y lo crea activo con rol admin.
func (uc *GimnasioUseCase) Create(in dto.CreateGimnasioRequest) (*dto.GimnasioResponse, error) {
	if in.Username == "" || in.Password == "" || in.GymName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	gym := &entity.Gimnasio{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		GymName:      in.GymName,
		Activo:       true,
		Rol:          jwt.RolAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(gym); err != nil {
		return nil, err
	}
	return toGimnasioResponse(gym), nil
}

// List devuelve todos los tenants.
func (uc *GimnasioUseCase) List() ([]dto.GimnasioResponse, error) {
	gyms, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GimnasioResponse, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, *toGimnasioResponse(g))
	}
	return out, nil
}

// Update edita un gimnasio. Password vacío no cambia la clave; Activo nil no toca el flag.
func (uc *GimnasioUseCase) Update(in dto.UpdateGimnasioRequest) (*dto.GimnasioResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	gym, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domain.ErrNotFound
	}
	if in.Username != "" {
		gym.Username = in.Username
	}
	if in.GymName != "" {
		gym.GymName = in.GymName
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		gym.PasswordHash = string(hash)
	}
	if in.Activo != nil {
		gym.Activo = *in.Activo
	}
	gym.UpdatedAt = time.Now()
	if err := uc.repo.Update(gym); err != nil {
		return nil, err
	}
	return toGimnasioResponse(gym), nil
}

// Delete borra físicamente un gimnasio (la baja operativa es el flag Activo).
func (uc *GimnasioUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	gym, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if gym == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toGimnasioResponse(g *entity.Gimnasio) *dto.GimnasioResponse {
	return &dto.GimnasioResponse{
		ID:        g.ID,
		Username:  g.Username,
		GymName:   g.GymName,
		Activo:    g.Activo,
		Rol:       g.Rol,
		CreatedAt: g.CreatedAt,
	}
}
