package dto

import "time"

// CreateSocioRequest alta de socio. Activo nil = alta activa.
type CreateSocioRequest struct {
	Documento          string     `json:"documento"`
	NombreCompleto     string     `json:"nombreCompleto"`
	FechaNacimiento    *time.Time `json:"fechaNacimiento"`
	Telefono           string     `json:"telefono"`
	Email              string     `json:"email,omitempty"`
	Direccion          string     `json:"direccion,omitempty"`
	ContactoEmergencia string     `json:"contactoEmergencia"`
	PlanID             string     `json:"planId"`
	Activo             *bool      `json:"activo,omitempty"`
	FechaAlta          *time.Time `json:"fechaAlta"`
	FotoURL            string     `json:"fotoUrl,omitempty"`
	RutinaID           string     `json:"rutinaAsignada,omitempty"`
}

// UpdateSocioRequest reemplazo completo, con el documento como clave.
type UpdateSocioRequest = CreateSocioRequest

// SocioResponse representación completa de un socio (listados y edición).
type SocioResponse struct {
	ID                 string    `json:"id"`
	Documento          string    `json:"documento"`
	NombreCompleto     string    `json:"nombreCompleto"`
	FechaNacimiento    time.Time `json:"fechaNacimiento"`
	Telefono           string    `json:"telefono"`
	Email              string    `json:"email,omitempty"`
	Direccion          string    `json:"direccion,omitempty"`
	ContactoEmergencia string    `json:"contactoEmergencia"`
	PlanID             string    `json:"planId"`
	Activo             bool      `json:"activo"`
	FechaAlta          time.Time `json:"fechaAlta"`
	FotoURL            string    `json:"fotoUrl,omitempty"`
	RutinaID           string    `json:"rutinaAsignada,omitempty"`
}

// ControlIngresoResponse payload del control de ingreso (molinete):
// lo que ve el operador al escanear o tipear un documento.
type ControlIngresoResponse struct {
	Documento        string    `json:"documento"`
	NombreCompleto   string    `json:"nombreCompleto"`
	PlanNombre       string    `json:"planNombre"`
	PlanDuracionDias int       `json:"planDuracionDias"`
	FechaAlta        time.Time `json:"fechaAlta"`
	FechaVencimiento time.Time `json:"fechaVencimiento"`
	DiasRestantes    int       `json:"diasRestantes"`
	Activo           bool      `json:"activo"`
	Estado           string    `json:"estado"`
	FotoURL          *string   `json:"fotoUrl"`
}

// SocioPorVencerResponse fila de la vista "por vencer" del dashboard.
type SocioPorVencerResponse struct {
	Documento        string    `json:"documento"`
	NombreCompleto   string    `json:"nombreCompleto"`
	Telefono         string    `json:"telefono"`
	PlanNombre       string    `json:"planNombre"`
	FechaVencimiento time.Time `json:"fechaVencimiento"`
	DiasRestantes    int       `json:"diasRestantes"`
}

// ReconciliacionResponse resumen de una corrida de reconciliación de flags.
type ReconciliacionResponse struct {
	Revisados  int `json:"revisados"`
	Corregidos int `json:"corregidos"`
}
