package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
)

// PlanHandler ABM de planes de membresía.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plan
// @Tags         planes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planes [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p.GymID, in)
	if err != nil {
		return planError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar planes del gimnasio
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/planes [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.uc.List(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar plan (no propaga la duración a socios existentes)
// @Tags         planes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.UpdatePlanRequest  true  "Datos del plan"
// @Success      200   {object}  dto.PlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/planes/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(p.GymID, in)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plan (socios que lo referencian caen en la duración por defecto)
// @Tags         planes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/planes/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.Delete(p.GymID, c.Params("id")); err != nil {
		return planError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "plan eliminado"})
}

func planError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre, precio y duracionDias son requeridos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "plan no encontrado"})
	default:
		return internalError(c, err)
	}
}
