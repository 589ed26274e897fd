package dto

import "github.com/shopspring/decimal"

// CreatePlanRequest alta de plan de membresía.
type CreatePlanRequest struct {
	Nombre       string           `json:"nombre"`
	Descripcion  string           `json:"descripcion,omitempty"`
	Precio       *decimal.Decimal `json:"precio"`
	DuracionDias *int             `json:"duracionDias"`
}

// UpdatePlanRequest edición completa de plan (mismos requeridos que el alta).
type UpdatePlanRequest struct {
	ID           string           `json:"id"`
	Nombre       string           `json:"nombre"`
	Descripcion  string           `json:"descripcion,omitempty"`
	Precio       *decimal.Decimal `json:"precio"`
	DuracionDias *int             `json:"duracionDias"`
}

// PlanResponse representación pública de un plan.
type PlanResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	DuracionDias int             `json:"duracionDias"`
}
