package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/application/pagos"
	"github.com/athletica/gym-api/internal/domain"
)

// PagoHandler cobro de cuotas y checkout online.
type PagoHandler struct {
	registrar   *pagos.RegistrarPagoUseCase
	preferencia *pagos.PreferenciaUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(registrar *pagos.RegistrarPagoUseCase, preferencia *pagos.PreferenciaUseCase) *PagoHandler {
	return &PagoHandler{registrar: registrar, preferencia: preferencia}
}

// Registrar godoc
// @Summary      Cobrar cuota (ingreso en caja + renovación opcional del socio)
// @Description  Con renovar=true la fecha de alta del socio se reinicia a hoy.
// @Description  Ingreso y renovación se hacen en una sola transacción.
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarPagoRequest  true  "Pago"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PagoHandler) Registrar(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.registrar.Registrar(c.Context(), p.GymID, p.OperadorID(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "descripción y monto positivo son requeridos (renovar exige socioId)"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "socio no encontrado"})
		default:
			return internalError(c, err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Preference godoc
// @Summary      Crear preferencia de pago online (MercadoPago)
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePreferenceRequest  true  "Datos del pago"
// @Success      200   {object}  dto.PreferenceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/mercadopago/preference [post]
func (h *PagoHandler) Preference(c *fiber.Ctx) error {
	var in dto.CreatePreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.preferencia.Crear(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombreSocio y monto positivo son requeridos"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: "el procesador de pagos no está configurado"})
		default:
			log.Error().Err(err).Msg("mercadopago: creación de preferencia")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "no se pudo crear la preferencia de pago"})
		}
	}
	return c.JSON(out)
}
