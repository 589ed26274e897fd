package pagos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
)

// CheckoutClient define el puerto de salida hacia el procesador de pagos.
// La implementación concreta habla con la API REST de MercadoPago.
type CheckoutClient interface {
	CreatePreference(ctx context.Context, titulo string, monto decimal.Decimal) (initPoint string, err error)
}

// PreferenciaUseCase crea la preferencia de checkout para el pago online de una cuota.
type PreferenciaUseCase struct {
	client CheckoutClient
}

// NewPreferenciaUseCase construye el caso de uso. client puede ser nil si el
// procesador no está configurado; Crear lo reporta como no disponible.
func NewPreferenciaUseCase(client CheckoutClient) *PreferenciaUseCase {
	return &PreferenciaUseCase{client: client}
}

// Crear valida la petición y delega en el procesador externo.
func (uc *PreferenciaUseCase) Crear(ctx context.Context, in dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error) {
	if uc.client == nil {
		return nil, domain.ErrConflict
	}
	if in.NombreSocio == "" || in.Monto == nil || !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	initPoint, err := uc.client.CreatePreference(ctx, "Pago socio: "+in.NombreSocio, *in.Monto)
	if err != nil {
		return nil, err
	}
	return &dto.PreferenceResponse{InitPoint: initPoint}, nil
}
