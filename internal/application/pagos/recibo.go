package pagos

import (
	"context"

	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// ReciboPDFGenerator define el puerto de salida para renderizar el recibo.
// La implementación concreta usa Maroto; para tests se inyecta un mock.
type ReciboPDFGenerator interface {
	GenerateReciboPDF(ctx context.Context, mov *entity.Movimiento, gym *entity.Gimnasio, socio *entity.Socio) ([]byte, error)
}

// ReciboUseCase arma el recibo en PDF de un movimiento de caja.
type ReciboUseCase struct {
	movRepo      repository.MovimientoRepository
	gimnasioRepo repository.GimnasioRepository
	socioRepo    repository.SocioRepository
	generator    ReciboPDFGenerator
}

// NewReciboUseCase construye el caso de uso.
func NewReciboUseCase(
	movRepo repository.MovimientoRepository,
	gimnasioRepo repository.GimnasioRepository,
	socioRepo repository.SocioRepository,
	generator ReciboPDFGenerator,
) *ReciboUseCase {
	return &ReciboUseCase{
		movRepo:      movRepo,
		gimnasioRepo: gimnasioRepo,
		socioRepo:    socioRepo,
		generator:    generator,
	}
}

// Generar devuelve los bytes del PDF del recibo del movimiento indicado.
func (uc *ReciboUseCase) Generar(ctx context.Context, gymID, movimientoID string) ([]byte, error) {
	mov, err := uc.movRepo.GetByID(movimientoID, gymID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	gym, err := uc.gimnasioRepo.GetByID(gymID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domain.ErrNotFound
	}
	// El socio es opcional en el movimiento; el recibo sale igual sin él.
	var socio *entity.Socio
	if mov.SocioID != "" {
		socio, err = uc.socioRepo.GetByID(mov.SocioID, gymID)
		if err != nil {
			return nil, err
		}
	}
	return uc.generator.GenerateReciboPDF(ctx, mov, gym, socio)
}
