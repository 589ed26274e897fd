package dto

import (
	"time"

	"github.com/athletica/gym-api/internal/domain/entity"
)

// CreateRutinaRequest alta de rutina. Dias puede venir vacío pero debe venir.
type CreateRutinaRequest struct {
	Nombre      string             `json:"nombre"`
	Descripcion string             `json:"descripcion,omitempty"`
	Dias        []entity.DiaRutina `json:"dias"`
}

// UpdateRutinaRequest edición completa de rutina.
type UpdateRutinaRequest struct {
	ID          string             `json:"id"`
	Nombre      string             `json:"nombre"`
	Descripcion string             `json:"descripcion,omitempty"`
	Dias        []entity.DiaRutina `json:"dias"`
}

// RutinaResponse representación pública de una rutina.
type RutinaResponse struct {
	ID          string             `json:"id"`
	Nombre      string             `json:"nombre"`
	Descripcion string             `json:"descripcion,omitempty"`
	Dias        []entity.DiaRutina `json:"dias"`
	CreadoPor   string             `json:"creadoPor"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
