package dto

// LoginRequest login del super-administrador de la plataforma.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GymLoginRequest login de cuenta de gimnasio (rol=admin, por username)
// o de empleado (rol=empleado, por email).
type GymLoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// LoginResponse token firmado para el header Authorization.
type LoginResponse struct {
	Token string `json:"token"`
}
