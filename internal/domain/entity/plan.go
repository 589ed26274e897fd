package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan es una tarifa de membresía: nombre, precio y duración en días.
// La duración no se propaga a los socios existentes al editarse; el evaluador
// de membresías siempre consulta el plan vigente al momento de la lectura.
type Plan struct {
	ID           string
	GymID        string
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	DuracionDias int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
