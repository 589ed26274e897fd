package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
)

// EmpleadoHandler ABM de empleados del gimnasio (solo admin).
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado (email+password opcionales habilitan su login)
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpleadoRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmpleadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.CreateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p.GymID, in)
	if err != nil {
		return empleadoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados del gimnasio
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmpleadoResponse
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.uc.List(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar empleado
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmpleadoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.EmpleadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [put]
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.UpdateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(p.GymID, in)
	if err != nil {
		return empleadoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/empleados/{id} [delete]
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.Delete(p.GymID, c.Params("id")); err != nil {
		return empleadoError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado"})
}

func empleadoError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos de empleado inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "empleado no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el email ya está en uso"})
	default:
		return internalError(c, err)
	}
}
