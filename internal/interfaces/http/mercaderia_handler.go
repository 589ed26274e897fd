package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
)

// MercaderiaHandler ABM de mercadería de venta mostrador.
type MercaderiaHandler struct {
	uc *usecase.MercaderiaUseCase
}

// NewMercaderiaHandler construye el handler.
func NewMercaderiaHandler(uc *usecase.MercaderiaUseCase) *MercaderiaHandler {
	return &MercaderiaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         mercaderia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMercaderiaRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.MercaderiaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/mercaderia [post]
func (h *MercaderiaHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.CreateMercaderiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p.GymID, in)
	if err != nil {
		return mercaderiaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mercadería del gimnasio
// @Tags         mercaderia
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MercaderiaResponse
// @Router       /api/mercaderia [get]
func (h *MercaderiaHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.uc.List(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar artículo (parcial; el stock se pisa con el valor enviado)
// @Tags         mercaderia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateMercaderiaRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MercaderiaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mercaderia/{id} [put]
func (h *MercaderiaHandler) Update(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.UpdateMercaderiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(p.GymID, in)
	if err != nil {
		return mercaderiaError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         mercaderia
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/mercaderia/{id} [delete]
func (h *MercaderiaHandler) Delete(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.Delete(p.GymID, c.Params("id")); err != nil {
		return mercaderiaError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado"})
}

func mercaderiaError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos de artículo inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "artículo no encontrado"})
	default:
		return internalError(c, err)
	}
}
