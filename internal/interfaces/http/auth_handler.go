package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/auth"
	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
)

// AuthHandler maneja los logins de plataforma y de gimnasio (públicos).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// LoginPlataforma godoc
// @Summary      Login del super-administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) LoginPlataforma(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.LoginPlataforma(in)
	if err != nil {
		return loginError(c, err)
	}
	return c.JSON(out)
}

// LoginGimnasio godoc
// @Summary      Login de cuenta de gimnasio o empleado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GymLoginRequest  true  "Credenciales + rol"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/gym-login [post]
func (h *AuthHandler) LoginGimnasio(c *fiber.Ctx) error {
	var in dto.GymLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.LoginGimnasio(in)
	if err != nil {
		return loginError(c, err)
	}
	return c.JSON(out)
}

// loginError traduce los errores de autenticación sin filtrar cuál de los
// dos factores falló (usuario inexistente y password incorrecto responden igual).
func loginError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "credenciales incompletas"})
	case domain.ErrUsuarioNoEncontrado, domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas"})
	case domain.ErrCuentaInactiva:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "cuenta inactiva"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas"})
	default:
		return internalError(c, err)
	}
}
