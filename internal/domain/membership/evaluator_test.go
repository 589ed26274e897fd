package membership

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/athletica/gym-api/internal/domain/entity"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func planDe(dias int) *entity.Plan {
	return &entity.Plan{
		ID:           "plan-1",
		GymID:        "gym-1",
		Nombre:       "Mensual",
		Precio:       decimal.NewFromInt(15000),
		DuracionDias: dias,
	}
}

func socioAlta(alta time.Time) *entity.Socio {
	return &entity.Socio{
		ID:        "socio-1",
		GymID:     "gym-1",
		Documento: "30111222",
		FechaAlta: alta,
	}
}

// Escenario de referencia: alta 2024-01-01, plan de 30 días → vence 2024-01-31.
func TestEvaluar_EscenarioMensual(t *testing.T) {
	socio := socioAlta(fecha("2024-01-01"))
	plan := planDe(30)

	// Consulta a mitad de período: activo con 16 días restantes.
	ev := Evaluar(socio, plan, fecha("2024-01-15"))
	assert.Equal(t, fecha("2024-01-31"), ev.FechaVencimiento)
	assert.True(t, ev.Activo)
	assert.Equal(t, EstadoActivo, ev.Estado)
	assert.Equal(t, 16, ev.DiasRestantes)

	// Consulta después del vencimiento: vencido con 0 días.
	ev = Evaluar(socio, plan, fecha("2024-02-05"))
	assert.False(t, ev.Activo)
	assert.Equal(t, EstadoVencido, ev.Estado)
	assert.Equal(t, 0, ev.DiasRestantes)
}

func TestEvaluar_DiaDeVencimientoSigueActivo(t *testing.T) {
	// now <= vencimiento cuenta como activo, incluso en el instante exacto.
	socio := socioAlta(fecha("2024-01-01"))
	ev := Evaluar(socio, planDe(30), fecha("2024-01-31"))
	assert.True(t, ev.Activo)
	assert.Equal(t, 0, ev.DiasRestantes)

	// Un segundo después ya está vencido.
	ev = Evaluar(socio, planDe(30), fecha("2024-01-31").Add(time.Second))
	assert.False(t, ev.Activo)
	assert.Equal(t, EstadoVencido, ev.Estado)
}

func TestEvaluar_PlanAusenteUsaDuracionPorDefecto(t *testing.T) {
	socio := socioAlta(fecha("2024-03-01"))

	// Plan borrado: nil → 30 días.
	ev := Evaluar(socio, nil, fecha("2024-03-10"))
	assert.Equal(t, fecha("2024-03-31"), ev.FechaVencimiento)
	assert.True(t, ev.Activo)

	// Plan sin duración cargada: también cae al defecto.
	ev = Evaluar(socio, planDe(0), fecha("2024-03-10"))
	assert.Equal(t, fecha("2024-03-31"), ev.FechaVencimiento)
}

func TestEvaluar_PorVencerDentroDeSieteDias(t *testing.T) {
	socio := socioAlta(fecha("2024-01-01"))
	plan := planDe(30) // vence 2024-01-31

	casos := []struct {
		ahora  string
		estado string
	}{
		{"2024-01-23", EstadoActivo},    // faltan 8 días
		{"2024-01-24", EstadoPorVencer}, // faltan 7 días exactos
		{"2024-01-30", EstadoPorVencer}, // falta 1 día
		{"2024-02-01", EstadoVencido},
	}
	for _, c := range casos {
		ev := Evaluar(socio, plan, fecha(c.ahora))
		assert.Equal(t, c.estado, ev.Estado, "ahora=%s", c.ahora)
	}
}

func TestEvaluar_DiasRestantesRedondeaHaciaArriba(t *testing.T) {
	socio := socioAlta(fecha("2024-01-01"))
	plan := planDe(30)

	// A mediodía del 15 faltan 15.5 días → ceil 16.
	ev := Evaluar(socio, plan, fecha("2024-01-15").Add(12*time.Hour))
	assert.Equal(t, 16, ev.DiasRestantes)
}

func TestEvaluar_NormalizaHusoHorario(t *testing.T) {
	// Alta cargada con hora tardía en un huso negativo: el día calendario UTC
	// es el que manda, no la hora local del servidor.
	zona := time.FixedZone("ART", -3*60*60)
	alta := time.Date(2024, 1, 1, 23, 30, 0, 0, zona) // 2024-01-02 02:30 UTC
	socio := socioAlta(alta)

	ev := Evaluar(socio, planDe(30), fecha("2024-02-01"))
	assert.Equal(t, fecha("2024-02-01"), ev.FechaVencimiento)
	assert.True(t, ev.Activo)
}

func TestEvaluar_EsDeterminista(t *testing.T) {
	socio := socioAlta(fecha("2024-01-01"))
	plan := planDe(30)
	ahora := fecha("2024-01-20")

	a := Evaluar(socio, plan, ahora)
	b := Evaluar(socio, plan, ahora)
	assert.Equal(t, a, b)
}

func TestDuracionDias(t *testing.T) {
	assert.Equal(t, 90, DuracionDias(planDe(90)))
	assert.Equal(t, DuracionPorDefectoDias, DuracionDias(nil))
	assert.Equal(t, DuracionPorDefectoDias, DuracionDias(planDe(0)))
}
