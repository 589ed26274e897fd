package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// MovimientoUseCase caja del gimnasio: registro, listado filtrado y balance.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// Create registra un movimiento. El monto debe ser estrictamente positivo:
// el signo lo da el tipo (ingreso/egreso), nunca el número. Todo movimiento
// queda atribuido al operador que lo registró.
func (uc *MovimientoUseCase) Create(gymID, empleadoID string, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if empleadoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo == "" || in.Descripcion == "" || in.Monto == nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	mov := &entity.Movimiento{
		ID:          uuid.New().String(),
		GymID:       gymID,
		Tipo:        in.Tipo,
		Descripcion: in.Descripcion,
		Monto:       *in.Monto,
		Fecha:       fecha,
		SocioID:     in.SocioID,
		EmpleadoID:  empleadoID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(mov); err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// List devuelve los movimientos del tenant, más recientes primero.
func (uc *MovimientoUseCase) List(gymID string, filtro repository.MovimientoFiltro) ([]dto.MovimientoResponse, error) {
	if filtro.Tipo != "" && !entity.TipoValido(filtro.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	movs, err := uc.repo.ListByGym(gymID, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovimientoResponse(m))
	}
	return out, nil
}

// GetByID devuelve un movimiento del tenant, o ErrNotFound.
func (uc *MovimientoUseCase) GetByID(gymID, id string) (*dto.MovimientoResponse, error) {
	mov, err := uc.repo.GetByID(id, gymID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return toMovimientoResponse(mov), nil
}

// Update edición parcial de un movimiento (solo admin; el handler aplica RBAC).
func (uc *MovimientoUseCase) Update(gymID string, in dto.UpdateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	mov, err := uc.repo.GetByID(in.ID, gymID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if in.Tipo != "" {
		if !entity.TipoValido(in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		mov.Tipo = in.Tipo
	}
	if in.Descripcion != "" {
		mov.Descripcion = in.Descripcion
	}
	if in.Monto != nil {
		if !in.Monto.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		mov.Monto = *in.Monto
	}
	if in.SocioID != nil {
		mov.SocioID = *in.SocioID
	}
	if err := uc.repo.Update(mov); err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// Delete borra un movimiento (solo admin; el handler aplica RBAC).
func (uc *MovimientoUseCase) Delete(gymID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	mov, err := uc.repo.GetByID(id, gymID)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, gymID)
}

// Balance agrega ingresos y egresos del tenant para un rango opcional.
// Siempre se calcula en la lectura; no existe un total acumulado almacenado.
func (uc *MovimientoUseCase) Balance(ctx context.Context, gymID string, desde, hasta *time.Time) (*dto.BalanceResponse, error) {
	b, err := uc.repo.GetBalance(ctx, gymID, desde, hasta)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		Ingresos: b.Ingresos,
		Egresos:  b.Egresos,
		Balance:  b.Total,
	}, nil
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Descripcion: m.Descripcion,
		Monto:       m.Monto,
		Fecha:       m.Fecha,
		SocioID:     m.SocioID,
		EmpleadoID:  m.EmpleadoID,
	}
}
