package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/athletica/gym-api/internal/domain/entity"
)

// MovimientoFiltro filtros opcionales para listar movimientos de caja.
// Los punteros nil significan "sin filtro".
type MovimientoFiltro struct {
	Tipo       string
	SocioID    string
	FechaDesde *time.Time
	FechaHasta *time.Time
}

// Balance resultado de la agregación de caja.
type Balance struct {
	Ingresos decimal.Decimal
	Egresos  decimal.Decimal
	Total    decimal.Decimal // Ingresos - Egresos
}

// MovimientoRepository define el puerto de persistencia para la caja.
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id, gymID string) (*entity.Movimiento, error)
	ListByGym(gymID string, filtro MovimientoFiltro) ([]*entity.Movimiento, error)
	Update(m *entity.Movimiento) error
	Delete(id, gymID string) error
	// GetBalance agrega ingresos y egresos en SQL; nunca hay un total almacenado.
	GetBalance(ctx context.Context, gymID string, desde, hasta *time.Time) (*Balance, error)
}
