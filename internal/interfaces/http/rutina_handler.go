package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
)

// RutinaHandler ABM de rutinas de entrenamiento.
type RutinaHandler struct {
	uc *usecase.RutinaUseCase
}

// NewRutinaHandler construye el handler.
func NewRutinaHandler(uc *usecase.RutinaUseCase) *RutinaHandler {
	return &RutinaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rutina
// @Tags         rutinas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRutinaRequest  true  "Datos de la rutina"
// @Success      201   {object}  dto.RutinaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rutinas [post]
func (h *RutinaHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.CreateRutinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p.GymID, p.SubjectID, in)
	if err != nil {
		return rutinaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar rutinas del gimnasio
// @Tags         rutinas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RutinaResponse
// @Router       /api/rutinas [get]
func (h *RutinaHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.uc.List(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar rutina
// @Tags         rutinas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la rutina"
// @Param        body  body  dto.UpdateRutinaRequest  true  "Datos de la rutina"
// @Success      200   {object}  dto.RutinaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rutinas/{id} [put]
func (h *RutinaHandler) Update(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.UpdateRutinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(p.GymID, in)
	if err != nil {
		return rutinaError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rutina (los socios asignados quedan sin rutina)
// @Tags         rutinas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la rutina"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/rutinas/{id} [delete]
func (h *RutinaHandler) Delete(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.Delete(p.GymID, c.Params("id")); err != nil {
		return rutinaError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "rutina eliminada"})
}

func rutinaError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre y dias son requeridos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "rutina no encontrada"})
	default:
		return internalError(c, err)
	}
}
