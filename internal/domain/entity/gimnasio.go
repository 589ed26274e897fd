package entity

import "time"

// Gimnasio representa un tenant de la plataforma: una cuenta de gimnasio.
// Todas las demás entidades quedan delimitadas por su GymID.
// La baja es lógica (Activo=false); el borrado físico lo hace solo el superadmin.
type Gimnasio struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	GymName      string
	Activo       bool
	Rol          string // siempre "admin" para la cuenta principal del gimnasio
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Admin es el super-administrador de la plataforma (alta y baja de gimnasios).
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
