package entity

import "time"

// Socio es un cliente del gimnasio.
// Documento es la clave natural, única dentro del tenant (índice único gym_id+documento).
// Activo es un flag derivado-pero-almacenado: se recalcula perezosamente en la
// lectura por documento y se corrige en la base solo cuando difiere del valor calculado.
type Socio struct {
	ID                 string
	GymID              string
	Documento          string
	NombreCompleto     string
	FechaNacimiento    time.Time
	Telefono           string
	Email              string
	Direccion          string
	ContactoEmergencia string
	PlanID             string
	Activo             bool
	FechaAlta          time.Time
	FotoURL            string
	RutinaID           string // rutina asignada, opcional
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
