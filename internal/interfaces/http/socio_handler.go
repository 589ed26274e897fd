package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/access"
	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
)

// SocioHandler ABM de socios más el control de ingreso por documento.
type SocioHandler struct {
	uc     *usecase.SocioUseCase
	lookup *access.LookupUseCase
}

// NewSocioHandler construye el handler.
func NewSocioHandler(uc *usecase.SocioUseCase, lookup *access.LookupUseCase) *SocioHandler {
	return &SocioHandler{uc: uc, lookup: lookup}
}

// Create godoc
// @Summary      Crear socio
// @Tags         socios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSocioRequest  true  "Datos del socio"
// @Success      201   {object}  dto.SocioResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/socios [post]
func (h *SocioHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.CreateSocioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p.GymID, in)
	if err != nil {
		return socioError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar socios, o control de ingreso si viene ?documento=
// @Description  Con ?documento= evalúa la membresía del socio y devuelve el
// @Description  payload del molinete. Documento inexistente responde 200 con
// @Description  cuerpo null (el front lo trata como "no encontrado").
// @Tags         socios
// @Security     Bearer
// @Produce      json
// @Param        documento  query  string  false  "Documento a consultar"
// @Success      200  {array}  dto.SocioResponse
// @Router       /api/socios [get]
func (h *SocioHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if documento := c.Query("documento"); documento != "" {
		out, err := h.lookup.Lookup(p.GymID, documento)
		if err != nil {
			return internalError(c, err)
		}
		// out == nil serializa como null con 200.
		return c.JSON(out)
	}
	out, err := h.uc.List(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar socio (clave: documento)
// @Tags         socios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        documento  path  string  true  "Documento del socio"
// @Param        body       body  dto.UpdateSocioRequest  true  "Datos del socio"
// @Success      200  {object}  dto.SocioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/socios/{documento} [put]
func (h *SocioHandler) Update(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.UpdateSocioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.Documento = c.Params("documento")
	out, err := h.uc.Update(p.GymID, in)
	if err != nil {
		return socioError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar socio por documento
// @Tags         socios
// @Security     Bearer
// @Produce      json
// @Param        documento  path  string  true  "Documento del socio"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/socios/{documento} [delete]
func (h *SocioHandler) Delete(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.Delete(p.GymID, c.Params("documento")); err != nil {
		return socioError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "socio eliminado"})
}

// Reconciliar godoc
// @Summary      Corregir flags activo desincronizados de todo el padrón
// @Tags         socios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconciliacionResponse
// @Router       /api/socios/reconciliar [post]
func (h *SocioHandler) Reconciliar(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.lookup.ReconciliarTodos(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// PorVencer godoc
// @Summary      Socios cuya membresía vence dentro de la ventana de aviso
// @Tags         socios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SocioPorVencerResponse
// @Router       /api/socios/por-vencer [get]
func (h *SocioHandler) PorVencer(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	out, err := h.lookup.PorVencer(p.GymID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

func socioError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos de socio incompletos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "socio no encontrado"})
	case domain.ErrDocumentoDuplicado:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "ya existe un socio con ese documento"})
	default:
		return internalError(c, err)
	}
}
