package entity

import "time"

// Ejercicio es un ejercicio dentro de un día de rutina.
type Ejercicio struct {
	Nombre       string `json:"nombre"`
	Series       int    `json:"series"`
	Repeticiones string `json:"repeticiones"`
	Descanso     string `json:"descanso"`
}

// DiaRutina agrupa los ejercicios de un día.
type DiaRutina struct {
	NombreDia  string      `json:"nombreDia"`
	Ejercicios []Ejercicio `json:"ejercicios"`
}

// Rutina es un plan de entrenamiento armado por el gimnasio.
// Dias se persiste como JSONB; los tags json definen también el formato en base.
type Rutina struct {
	ID          string
	GymID       string
	Nombre      string
	Descripcion string
	Dias        []DiaRutina
	CreadoPor   string // id del principal que la creó
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
