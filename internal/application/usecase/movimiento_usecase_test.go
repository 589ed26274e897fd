package usecase

import (
	"context"
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

// fakeMovimientoRepo repositorio en memoria para los tests de caja.
type fakeMovimientoRepo struct {
	movs    []*entity.Movimiento
	balance repository.Balance
}

func (f *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovimientoRepo) GetByID(id, gymID string) (*entity.Movimiento, error) {
	for _, m := range f.movs {
		if m.ID == id && m.GymID == gymID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovimientoRepo) ListByGym(gymID string, _ repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range f.movs {
		if m.GymID == gymID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovimientoRepo) Update(m *entity.Movimiento) error { return nil }
func (f *fakeMovimientoRepo) Delete(id, gymID string) error     { return nil }

func (f *fakeMovimientoRepo) GetBalance(_ context.Context, _ string, _, _ *time.Time) (*repository.Balance, error) {
	b := f.balance
	return &b, nil
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestMovimientoCreate_AsignaIDyFecha(t *testing.T) {
	repo := &fakeMovimientoRepo{}
	uc := NewMovimientoUseCase(repo)

	out, err := uc.Create("gym-1", "emp-1", dto.CreateMovimientoRequest{
		Tipo:        entity.MovimientoIngreso,
		Descripcion: "Cuota mensual",
		Monto:       dec("15000"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.False(t, out.Fecha.IsZero(), "sin fecha en el request se usa el instante de recepción")
	assert.Equal(t, "emp-1", out.EmpleadoID)
	require.Len(t, repo.movs, 1)
	assert.Equal(t, "gym-1", repo.movs[0].GymID)
}

func TestMovimientoCreate_RechazaMontoNoPositivo(t *testing.T) {
	uc := NewMovimientoUseCase(&fakeMovimientoRepo{})

	for _, monto := range []string{"0", "-100"} {
		_, err := uc.Create("gym-1", "emp-1", dto.CreateMovimientoRequest{
			Tipo:        entity.MovimientoEgreso,
			Descripcion: "Compra de insumos",
			Monto:       dec(monto),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s debe rechazarse", monto)
	}
}

// Todo movimiento queda atribuido a un operador: sin él no se persiste nada.
func TestMovimientoCreate_RechazaOperadorVacio(t *testing.T) {
	repo := &fakeMovimientoRepo{}
	uc := NewMovimientoUseCase(repo)

	_, err := uc.Create("gym-1", "", dto.CreateMovimientoRequest{
		Tipo:        entity.MovimientoIngreso,
		Descripcion: "Cuota mensual",
		Monto:       dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.movs)
}

func TestMovimientoCreate_RechazaTipoDesconocido(t *testing.T) {
	uc := NewMovimientoUseCase(&fakeMovimientoRepo{})

	_, err := uc.Create("gym-1", "emp-1", dto.CreateMovimientoRequest{
		Tipo:        "transferencia",
		Descripcion: "x",
		Monto:       dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimientoUpdate_NoEncontrado(t *testing.T) {
	uc := NewMovimientoUseCase(&fakeMovimientoRepo{})

	_, err := uc.Update("gym-1", dto.UpdateMovimientoRequest{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimientoBalance_MapeaAgregacion(t *testing.T) {
	repo := &fakeMovimientoRepo{balance: repository.Balance{
		Ingresos: decimal.RequireFromString("50000"),
		Egresos:  decimal.RequireFromString("12500.50"),
		Total:    decimal.RequireFromString("37499.50"),
	}}
	uc := NewMovimientoUseCase(repo)

	out, err := uc.Balance(context.Background(), "gym-1", nil, nil)
	require.NoError(t, err)

	assert.True(t, out.Ingresos.Equal(decimal.RequireFromString("50000")))
	assert.True(t, out.Egresos.Equal(decimal.RequireFromString("12500.50")))
	assert.True(t, out.Balance.Equal(decimal.RequireFromString("37499.50")))
}
