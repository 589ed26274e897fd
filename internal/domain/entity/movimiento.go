package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
)

// Movimiento es un registro de caja (ingreso o egreso).
// El balance nunca se almacena: se calcula como agregación en la lectura
// para evitar deriva entre escritores concurrentes.
type Movimiento struct {
	ID          string
	GymID       string
	Tipo        string // ingreso | egreso
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
	SocioID     string // opcional: socio asociado al movimiento
	EmpleadoID  string // quién lo registró
	CreatedAt   time.Time
}

// TipoValido indica si el tipo es uno de los reconocidos.
func TipoValido(tipo string) bool {
	return tipo == MovimientoIngreso || tipo == MovimientoEgreso
}
