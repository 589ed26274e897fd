package dto

import "github.com/shopspring/decimal"

// RegistrarPagoRequest pago de cuota: registra el ingreso en caja y,
// si Renovar es true, reinicia la membresía del socio (fechaAlta = hoy).
type RegistrarPagoRequest struct {
	Descripcion string           `json:"descripcion"`
	Monto       *decimal.Decimal `json:"monto"`
	SocioID     string           `json:"socioId,omitempty"`
	Renovar     bool             `json:"renovar,omitempty"`
}

// CreatePreferenceRequest creación de preferencia de pago en MercadoPago.
type CreatePreferenceRequest struct {
	NombreSocio string           `json:"nombreSocio"`
	Monto       *decimal.Decimal `json:"monto"`
}

// PreferenceResponse URL de checkout devuelta por el procesador.
type PreferenceResponse struct {
	InitPoint string `json:"init_point"`
}
