package dto

// ErrorResponse cuerpo de error HTTP. El front-end muestra el string tal cual,
// por eso el sobre es exactamente {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta de confirmación para operaciones sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}
