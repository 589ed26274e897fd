package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest alta de movimiento de caja.
// Fecha nil = instante de recepción. Monto por puntero para distinguir
// "ausente" de cero (ambos se rechazan, pero con mensajes distintos).
type CreateMovimientoRequest struct {
	Tipo        string           `json:"tipo"`
	Descripcion string           `json:"descripcion"`
	Monto       *decimal.Decimal `json:"monto"`
	Fecha       *time.Time       `json:"fecha,omitempty"`
	SocioID     string           `json:"socioId,omitempty"`
}

// UpdateMovimientoRequest edición parcial (solo admin).
type UpdateMovimientoRequest struct {
	ID          string           `json:"id"`
	Tipo        string           `json:"tipo,omitempty"`
	Descripcion string           `json:"descripcion,omitempty"`
	Monto       *decimal.Decimal `json:"monto,omitempty"`
	SocioID     *string          `json:"socioId,omitempty"`
}

// MovimientoResponse representación pública de un movimiento.
type MovimientoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	SocioID     string          `json:"socioId,omitempty"`
	EmpleadoID  string          `json:"empleadoId"`
}

// BalanceResponse agregación de caja para un rango opcional de fechas.
type BalanceResponse struct {
	Ingresos decimal.Decimal `json:"ingresos"`
	Egresos  decimal.Decimal `json:"egresos"`
	Balance  decimal.Decimal `json:"balance"`
}
