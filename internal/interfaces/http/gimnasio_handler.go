package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
)

// GimnasioHandler maneja el ABM de tenants (solo superadmin).
type GimnasioHandler struct {
	uc *usecase.GimnasioUseCase
}

// NewGimnasioHandler construye el handler.
func NewGimnasioHandler(uc *usecase.GimnasioUseCase) *GimnasioHandler {
	return &GimnasioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear gimnasio
// @Tags         gimnasios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGimnasioRequest  true  "Datos del gimnasio"
// @Success      201   {object}  dto.GimnasioResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/gimnasios [post]
func (h *GimnasioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGimnasioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "username, password y gymName son requeridos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el username ya está en uso"})
		default:
			return internalError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gimnasios
// @Tags         gimnasios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GimnasioResponse
// @Router       /api/gimnasios [get]
func (h *GimnasioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar gimnasio (password opcional, baja lógica vía activo)
// @Tags         gimnasios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gimnasio"
// @Param        body  body  dto.UpdateGimnasioRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.GimnasioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gimnasios/{id} [put]
func (h *GimnasioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGimnasioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "gimnasio no encontrado"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el username ya está en uso"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gimnasio (borrado físico, datos en cascada)
// @Tags         gimnasios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del gimnasio"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/gimnasios/{id} [delete]
func (h *GimnasioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "gimnasio no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "gimnasio eliminado"})
}
