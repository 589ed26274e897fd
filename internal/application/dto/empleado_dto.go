package dto

import "time"

// CreateEmpleadoRequest alta de empleado. Email+Password habilitan su login.
type CreateEmpleadoRequest struct {
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Puesto         string `json:"puesto,omitempty"`
	Password       string `json:"password,omitempty"`
}

// UpdateEmpleadoRequest edición de empleado; Activo nil = no tocar.
type UpdateEmpleadoRequest struct {
	ID             string `json:"id"`
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Puesto         string `json:"puesto,omitempty"`
	Activo         *bool  `json:"activo,omitempty"`
	Password       string `json:"password,omitempty"`
}

// EmpleadoResponse representación pública de un empleado.
type EmpleadoResponse struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombreCompleto"`
	Email          string    `json:"email,omitempty"`
	Telefono       string    `json:"telefono,omitempty"`
	Puesto         string    `json:"puesto,omitempty"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"createdAt"`
}
