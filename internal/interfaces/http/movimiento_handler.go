package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/pagos"
	"github.com/athletica/gym-api/internal/application/usecase"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// MovimientoHandler caja del gimnasio: movimientos, balance y recibos.
type MovimientoHandler struct {
	uc     *usecase.MovimientoUseCase
	recibo *pagos.ReciboUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase, recibo *pagos.ReciboUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, recibo: recibo}
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p.GymID, p.OperadorID(), in)
	if err != nil {
		return movimientoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (filtros: tipo, socioId, desde, hasta)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        tipo     query  string  false  "ingreso | egreso"
// @Param        socioId  query  string  false  "Filtrar por socio"
// @Param        desde    query  string  false  "Fecha inicial (2006-01-02 o RFC3339)"
// @Param        hasta    query  string  false  "Fecha final (2006-01-02 o RFC3339)"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	filtro := repository.MovimientoFiltro{
		Tipo:    c.Query("tipo"),
		SocioID: c.Query("socioId"),
	}
	var err error
	if filtro.FechaDesde, err = parseFecha(c.Query("desde")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "desde: fecha inválida"})
	}
	if filtro.FechaHasta, err = parseFechaHasta(c.Query("hasta")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "hasta: fecha inválida"})
	}
	out, err := h.uc.List(p.GymID, filtro)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Balance de caja (agregado en la lectura, nunca almacenado)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial"
// @Param        hasta  query  string  false  "Fecha final"
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/movimientos/balance [get]
func (h *MovimientoHandler) Balance(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "desde: fecha inválida"})
	}
	hasta, err := parseFechaHasta(c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "hasta: fecha inválida"})
	}
	out, err := h.uc.Balance(c.Context(), p.GymID, desde, hasta)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar movimiento (solo admin)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovimientoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MovimientoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [put]
func (h *MovimientoHandler) Update(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.UpdateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(p.GymID, in)
	if err != nil {
		return movimientoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento (solo admin)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/movimientos/{id} [delete]
func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := h.uc.Delete(p.GymID, c.Params("id")); err != nil {
		return movimientoError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}

// Recibo godoc
// @Summary      Recibo del movimiento en PDF
// @Tags         movimientos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id}/recibo [get]
func (h *MovimientoHandler) Recibo(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	pdfBytes, err := h.recibo.Generar(c.Context(), p.GymID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "movimiento no encontrado"})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}

func movimientoError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "tipo, descripción y monto positivo son requeridos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "movimiento no encontrado"})
	default:
		return internalError(c, err)
	}
}

// parseFecha acepta 2006-01-02 o RFC3339; vacío devuelve nil sin error.
func parseFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseFechaHasta acepta los mismos formatos, pero una fecha sin hora se
// extiende al final del día: "hasta=2024-01-31" debe incluir los movimientos
// del 31, no cortar a la medianoche que lo inicia.
func parseFechaHasta(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.Add(24*time.Hour - time.Nanosecond)
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
