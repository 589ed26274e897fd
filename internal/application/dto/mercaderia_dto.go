package dto

import "github.com/shopspring/decimal"

// CreateMercaderiaRequest alta de artículo.
type CreateMercaderiaRequest struct {
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion,omitempty"`
	Stock          int              `json:"stock"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
}

// UpdateMercaderiaRequest edición parcial: campos nil no se tocan.
type UpdateMercaderiaRequest struct {
	ID             string           `json:"id"`
	Nombre         *string          `json:"nombre,omitempty"`
	Descripcion    *string          `json:"descripcion,omitempty"`
	Stock          *int             `json:"stock,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario,omitempty"`
}

// MercaderiaResponse representación pública de un artículo.
type MercaderiaResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Stock          int             `json:"stock"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}
