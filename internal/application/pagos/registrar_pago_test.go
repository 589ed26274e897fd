package pagos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// fakeTx simula la transacción: pasa repos en memoria al callback y descarta
// todo lo escrito si fn devuelve error, igual que un rollback real.
type fakeTx struct {
	movRepo   *fakeMovRepo
	socioRepo *fakeSocioRepo
	rolledBak bool
}

func (f *fakeTx) Run(_ context.Context, fn func(repository.MovimientoRepository, repository.SocioRepository) error) error {
	movAntes := len(f.movRepo.movs)
	if err := fn(f.movRepo, f.socioRepo); err != nil {
		f.movRepo.movs = f.movRepo.movs[:movAntes]
		f.rolledBak = true
		return err
	}
	return nil
}

type fakeMovRepo struct {
	movs []*entity.Movimiento
}

func (f *fakeMovRepo) Create(m *entity.Movimiento) error { f.movs = append(f.movs, m); return nil }
func (f *fakeMovRepo) GetByID(id, gymID string) (*entity.Movimiento, error) {
	return nil, nil
}
func (f *fakeMovRepo) ListByGym(string, repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	return f.movs, nil
}
func (f *fakeMovRepo) Update(*entity.Movimiento) error { return nil }
func (f *fakeMovRepo) Delete(string, string) error     { return nil }
func (f *fakeMovRepo) GetBalance(context.Context, string, *time.Time, *time.Time) (*repository.Balance, error) {
	return &repository.Balance{}, nil
}

type fakeSocioRepo struct {
	socios    map[string]*entity.Socio
	updateErr error
	updates   int
}

func (f *fakeSocioRepo) Create(*entity.Socio) error { return nil }
func (f *fakeSocioRepo) GetByID(id, gymID string) (*entity.Socio, error) {
	s, ok := f.socios[id]
	if !ok || s.GymID != gymID {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSocioRepo) GetByDocumento(string, string) (*entity.Socio, error) { return nil, nil }
func (f *fakeSocioRepo) ListByGym(string) ([]*entity.Socio, error)            { return nil, nil }
func (f *fakeSocioRepo) Update(s *entity.Socio) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.socios[s.ID] = s
	return nil
}
func (f *fakeSocioRepo) UpdateActivo(string, bool) error        { return nil }
func (f *fakeSocioRepo) DeleteByDocumento(string, string) error { return nil }

func newFakeTx(socios ...*entity.Socio) *fakeTx {
	byID := make(map[string]*entity.Socio)
	for _, s := range socios {
		byID[s.ID] = s
	}
	return &fakeTx{movRepo: &fakeMovRepo{}, socioRepo: &fakeSocioRepo{socios: byID}}
}

func monto(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRegistrar_SoloIngreso(t *testing.T) {
	tx := newFakeTx()
	uc := NewRegistrarPagoUseCase(tx)

	out, err := uc.Registrar(context.Background(), "gym-1", "emp-1", dto.RegistrarPagoRequest{
		Descripcion: "Cuota septiembre",
		Monto:       monto("18000"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovimientoIngreso, out.Tipo)
	assert.Equal(t, "emp-1", out.EmpleadoID)
	require.Len(t, tx.movRepo.movs, 1)
	assert.Equal(t, "gym-1", tx.movRepo.movs[0].GymID)
	assert.Zero(t, tx.socioRepo.updates, "sin renovar no se toca al socio")
}

func TestRegistrar_ConRenovacion_ReiniciaFechaAlta(t *testing.T) {
	vieja := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	socio := &entity.Socio{ID: "soc-1", GymID: "gym-1", FechaAlta: vieja, Activo: false}
	tx := newFakeTx(socio)
	uc := NewRegistrarPagoUseCase(tx)

	_, err := uc.Registrar(context.Background(), "gym-1", "emp-1", dto.RegistrarPagoRequest{
		Descripcion: "Renovación mensual",
		Monto:       monto("18000"),
		SocioID:     "soc-1",
		Renovar:     true,
	})
	require.NoError(t, err)

	assert.True(t, socio.FechaAlta.After(vieja), "la fecha de alta debe reiniciarse")
	assert.True(t, socio.Activo)
	assert.Equal(t, 1, tx.socioRepo.updates)
	require.Len(t, tx.movRepo.movs, 1)
}

func TestRegistrar_RenovarSocioInexistente_Rollback(t *testing.T) {
	tx := newFakeTx()
	uc := NewRegistrarPagoUseCase(tx)

	_, err := uc.Registrar(context.Background(), "gym-1", "emp-1", dto.RegistrarPagoRequest{
		Descripcion: "Renovación",
		Monto:       monto("18000"),
		SocioID:     "fantasma",
		Renovar:     true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, tx.rolledBak)
	assert.Empty(t, tx.movRepo.movs, "el ingreso no debe quedar registrado si la renovación falla")
}

func TestRegistrar_FalloDeEscritura_Rollback(t *testing.T) {
	socio := &entity.Socio{ID: "soc-1", GymID: "gym-1"}
	tx := newFakeTx(socio)
	tx.socioRepo.updateErr = errors.New("conexión perdida")
	uc := NewRegistrarPagoUseCase(tx)

	_, err := uc.Registrar(context.Background(), "gym-1", "emp-1", dto.RegistrarPagoRequest{
		Descripcion: "Renovación",
		Monto:       monto("18000"),
		SocioID:     "soc-1",
		Renovar:     true,
	})
	assert.Error(t, err)
	assert.Empty(t, tx.movRepo.movs)
}

func TestRegistrar_Validaciones(t *testing.T) {
	uc := NewRegistrarPagoUseCase(newFakeTx())

	casos := []dto.RegistrarPagoRequest{
		{Monto: monto("100")},                                  // sin descripción
		{Descripcion: "x"},                                     // sin monto
		{Descripcion: "x", Monto: monto("0")},                  // monto cero
		{Descripcion: "x", Monto: monto("-5")},                 // monto negativo
		{Descripcion: "x", Monto: monto("100"), Renovar: true}, // renovar sin socio
	}
	for i, in := range casos {
		_, err := uc.Registrar(context.Background(), "gym-1", "emp-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

// El cobro siempre queda atribuido a un operador; sin él se rechaza antes
// de abrir la transacción.
func TestRegistrar_RechazaOperadorVacio(t *testing.T) {
	tx := newFakeTx()
	uc := NewRegistrarPagoUseCase(tx)

	_, err := uc.Registrar(context.Background(), "gym-1", "", dto.RegistrarPagoRequest{
		Descripcion: "Cuota mensual",
		Monto:       monto("15000"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, tx.movRepo.movs)
}

func TestPreferencia_SinProcesadorConfigurado(t *testing.T) {
	uc := NewPreferenciaUseCase(nil)

	_, err := uc.Crear(context.Background(), dto.CreatePreferenceRequest{
		NombreSocio: "Ana",
		Monto:       monto("100"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

type fakeCheckout struct {
	titulo string
}

func (f *fakeCheckout) CreatePreference(_ context.Context, titulo string, _ decimal.Decimal) (string, error) {
	f.titulo = titulo
	return "https://checkout.example/init", nil
}

func TestPreferencia_ArmaTitulo(t *testing.T) {
	client := &fakeCheckout{}
	uc := NewPreferenciaUseCase(client)

	out, err := uc.Crear(context.Background(), dto.CreatePreferenceRequest{
		NombreSocio: "Ana López",
		Monto:       monto("18000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Pago socio: Ana López", client.titulo)
	assert.Equal(t, "https://checkout.example/init", out.InitPoint)
}
