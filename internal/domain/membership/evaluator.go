// Package membership implementa la evaluación pura del estado de una membresía:
// vencimiento por fecha de alta + duración del plan, clasificación
// activo / por vencer / vencido y días restantes.
//
// Toda la aritmética es en granularidad de día sobre fechas normalizadas a
// medianoche UTC, para que el resultado no dependa del huso horario del
// servidor en los bordes de medianoche.
package membership

import (
	"time"

	"github.com/athletica/gym-api/internal/domain/entity"
)

// DuracionPorDefectoDias se usa cuando el socio referencia un plan inexistente
// o el plan no tiene duración cargada.
const DuracionPorDefectoDias = 30

// VentanaPorVencerDias define el umbral de "por vencer" para la vista de dashboard.
const VentanaPorVencerDias = 7

// Estados posibles de una membresía.
const (
	EstadoActivo    = "activo"
	EstadoPorVencer = "por_vencer" // clasificación de lectura, nunca se persiste
	EstadoVencido   = "vencido"
)

// Evaluacion es el resultado de evaluar una membresía en un instante dado.
type Evaluacion struct {
	FechaVencimiento time.Time // medianoche UTC del día de vencimiento
	DiasRestantes    int       // max(0, ceil((vencimiento - ahora) / 24h))
	Estado           string
	Activo           bool // Estado != vencido
}

// Evaluar calcula el estado de la membresía de un socio contra su plan.
// plan puede ser nil (plan borrado): se aplica la duración por defecto.
// Es una función pura: mismo socio, plan y ahora producen el mismo resultado.
func Evaluar(socio *entity.Socio, plan *entity.Plan, ahora time.Time) Evaluacion {
	dur := DuracionPorDefectoDias
	if plan != nil && plan.DuracionDias > 0 {
		dur = plan.DuracionDias
	}

	venc := diaUTC(socio.FechaAlta).AddDate(0, 0, dur)

	ev := Evaluacion{
		FechaVencimiento: venc,
		DiasRestantes:    diasRestantes(venc, ahora),
	}

	resto := venc.Sub(ahora)
	switch {
	case resto < 0:
		ev.Estado = EstadoVencido
	case resto > 0 && resto <= VentanaPorVencerDias*24*time.Hour:
		// ahora < venc <= ahora+7d: ventana de aviso, solo para lectura
		ev.Estado = EstadoPorVencer
		ev.Activo = true
	default:
		ev.Estado = EstadoActivo
		ev.Activo = true
	}
	return ev
}

// DuracionDias devuelve la duración efectiva que usaría Evaluar para el plan dado.
func DuracionDias(plan *entity.Plan) int {
	if plan != nil && plan.DuracionDias > 0 {
		return plan.DuracionDias
	}
	return DuracionPorDefectoDias
}

// diaUTC normaliza un instante a la medianoche UTC de su día calendario.
func diaUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// diasRestantes calcula max(0, ceil((venc - ahora) / 24h)).
func diasRestantes(venc, ahora time.Time) int {
	d := venc.Sub(ahora)
	if d <= 0 {
		return 0
	}
	dias := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		dias++
	}
	return dias
}
