package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/usecase"
)

// DashboardHandler panel del superadmin: conteos de tenants.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen de la plataforma
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
