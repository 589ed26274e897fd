package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// SocioUseCase CRUD de socios. La consulta de control de ingreso vive aparte
// en el paquete access; esto es solo la gestión del padrón.
type SocioUseCase struct {
	repo repository.SocioRepository
}

// NewSocioUseCase construye el caso de uso.
func NewSocioUseCase(repo repository.SocioRepository) *SocioUseCase {
	return &SocioUseCase{repo: repo}
}

// Create da de alta un socio. Documento duplicado dentro del tenant → ErrDocumentoDuplicado.
func (uc *SocioUseCase) Create(gymID string, in dto.CreateSocioRequest) (*dto.SocioResponse, error) {
	if in.Documento == "" || in.NombreCompleto == "" || in.FechaNacimiento == nil ||
		in.Telefono == "" || in.ContactoEmergencia == "" || in.PlanID == "" || in.FechaAlta == nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDocumento(in.Documento, gymID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDocumentoDuplicado
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	socio := &entity.Socio{
		ID:                 uuid.New().String(),
		GymID:              gymID,
		Documento:          in.Documento,
		NombreCompleto:     in.NombreCompleto,
		FechaNacimiento:    *in.FechaNacimiento,
		Telefono:           in.Telefono,
		Email:              in.Email,
		Direccion:          in.Direccion,
		ContactoEmergencia: in.ContactoEmergencia,
		PlanID:             in.PlanID,
		Activo:             activo,
		FechaAlta:          *in.FechaAlta,
		FotoURL:            in.FotoURL,
		RutinaID:           in.RutinaID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(socio); err != nil {
		return nil, err
	}
	return toSocioResponse(socio), nil
}

// List devuelve todos los socios del tenant sin recalcular el flag activo:
// la corrección perezosa ocurre solo en la lectura por documento.
func (uc *SocioUseCase) List(gymID string) ([]dto.SocioResponse, error) {
	socios, err := uc.repo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SocioResponse, 0, len(socios))
	for _, s := range socios {
		out = append(out, *toSocioResponse(s))
	}
	return out, nil
}

// Update reemplaza los datos del socio identificado por documento.
func (uc *SocioUseCase) Update(gymID string, in dto.UpdateSocioRequest) (*dto.SocioResponse, error) {
	if in.Documento == "" || in.NombreCompleto == "" || in.FechaNacimiento == nil ||
		in.Telefono == "" || in.ContactoEmergencia == "" || in.PlanID == "" || in.FechaAlta == nil {
		return nil, domain.ErrInvalidInput
	}
	socio, err := uc.repo.GetByDocumento(in.Documento, gymID)
	if err != nil {
		return nil, err
	}
	if socio == nil {
		return nil, domain.ErrNotFound
	}
	socio.NombreCompleto = in.NombreCompleto
	socio.FechaNacimiento = *in.FechaNacimiento
	socio.Telefono = in.Telefono
	socio.Email = in.Email
	socio.Direccion = in.Direccion
	socio.ContactoEmergencia = in.ContactoEmergencia
	socio.PlanID = in.PlanID
	socio.FechaAlta = *in.FechaAlta
	socio.FotoURL = in.FotoURL
	socio.RutinaID = in.RutinaID
	if in.Activo != nil {
		socio.Activo = *in.Activo
	} else {
		socio.Activo = true
	}
	socio.UpdatedAt = time.Now()
	if err := uc.repo.Update(socio); err != nil {
		return nil, err
	}
	return toSocioResponse(socio), nil
}

// Delete borra un socio por documento.
func (uc *SocioUseCase) Delete(gymID, documento string) error {
	if documento == "" {
		return domain.ErrInvalidInput
	}
	socio, err := uc.repo.GetByDocumento(documento, gymID)
	if err != nil {
		return err
	}
	if socio == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByDocumento(documento, gymID)
}

func toSocioResponse(s *entity.Socio) *dto.SocioResponse {
	return &dto.SocioResponse{
		ID:                 s.ID,
		Documento:          s.Documento,
		NombreCompleto:     s.NombreCompleto,
		FechaNacimiento:    s.FechaNacimiento,
		Telefono:           s.Telefono,
		Email:              s.Email,
		Direccion:          s.Direccion,
		ContactoEmergencia: s.ContactoEmergencia,
		PlanID:             s.PlanID,
		Activo:             s.Activo,
		FechaAlta:          s.FechaAlta,
		FotoURL:            s.FotoURL,
		RutinaID:           s.RutinaID,
	}
}
