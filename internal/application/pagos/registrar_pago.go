// Package pagos implementa el cobro de cuotas: registro atómico en caja con
// renovación opcional de la membresía, recibo en PDF y la preferencia de
// checkout del procesador externo.
package pagos

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Lo implementa postgres.TxRunner; para tests se inyecta un fake.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		socioRepo repository.SocioRepository,
	) error) error
}

// RegistrarPagoUseCase cobro de cuota: ingreso en caja + renovación opcional
// del socio, en una sola transacción. Sin transacción, un fallo entre ambos
// pasos dejaba efecto parcial; acá o pasan los dos o no pasa ninguno.
type RegistrarPagoUseCase struct {
	tx TxRunner
}

// NewRegistrarPagoUseCase construye el caso de uso.
func NewRegistrarPagoUseCase(tx TxRunner) *RegistrarPagoUseCase {
	return &RegistrarPagoUseCase{tx: tx}
}

// Registrar valida y ejecuta el pago. El cobro siempre queda atribuido a un
// operador.
func (uc *RegistrarPagoUseCase) Registrar(ctx context.Context, gymID, empleadoID string, in dto.RegistrarPagoRequest) (*dto.MovimientoResponse, error) {
	if empleadoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Descripcion == "" || in.Monto == nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Renovar && in.SocioID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movimiento{
		ID:          uuid.New().String(),
		GymID:       gymID,
		Tipo:        entity.MovimientoIngreso,
		Descripcion: in.Descripcion,
		Monto:       *in.Monto,
		Fecha:       now,
		SocioID:     in.SocioID,
		EmpleadoID:  empleadoID,
		CreatedAt:   now,
	}

	err := uc.tx.Run(ctx, func(movRepo repository.MovimientoRepository, socioRepo repository.SocioRepository) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if !in.Renovar {
			return nil
		}
		socio, err := socioRepo.GetByID(in.SocioID, gymID)
		if err != nil {
			return err
		}
		if socio == nil {
			return domain.ErrNotFound
		}
		socio.FechaAlta = now
		socio.Activo = true
		socio.UpdatedAt = now
		return socioRepo.Update(socio)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovimientoResponse{
		ID:          mov.ID,
		Tipo:        mov.Tipo,
		Descripcion: mov.Descripcion,
		Monto:       mov.Monto,
		Fecha:       mov.Fecha,
		SocioID:     mov.SocioID,
		EmpleadoID:  mov.EmpleadoID,
	}, nil
}
