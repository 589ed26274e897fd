package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mercaderia es un artículo de venta mostrador con contador simple de stock.
// Sin reservas ni bloqueos: el stock se pisa con el valor enviado en cada edición.
type Mercaderia struct {
	ID             string
	GymID          string
	Nombre         string
	Descripcion    string
	Stock          int
	PrecioUnitario decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
