package dto

import "time"

// CreateGimnasioRequest alta de tenant (solo superadmin).
type CreateGimnasioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	GymName  string `json:"gymName"`
}

// UpdateGimnasioRequest edición parcial: password vacío = no cambiar,
// Activo nil = no tocar el flag.
type UpdateGimnasioRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	GymName  string `json:"gymName"`
	Password string `json:"password,omitempty"`
	Activo   *bool  `json:"activo,omitempty"`
}

// GimnasioResponse representación pública de un tenant (sin hash).
type GimnasioResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	GymName   string    `json:"gymName"`
	Activo    bool      `json:"activo"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
}
