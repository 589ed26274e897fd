package entity

import "time"

// Empleado pertenece a un Gimnasio. Autentica con email+password propio
// pero hereda el alcance del tenant (GymID) en el token.
type Empleado struct {
	ID             string
	GymID          string
	NombreCompleto string
	Email          string
	Telefono       string
	Puesto         string
	Activo         bool
	Rol            string // siempre "empleado"
	PasswordHash   string // vacío = no puede iniciar sesión
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
