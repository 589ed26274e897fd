// Package access implementa el control de ingreso: la consulta por documento
// que se usa en el molinete para decidir si un socio puede entrar.
package access

import (
	"time"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/membership"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// LookupUseCase resuelve la consulta de ingreso y la reconciliación del flag activo.
type LookupUseCase struct {
	socioRepo repository.SocioRepository
	planRepo  repository.PlanRepository
	now       func() time.Time
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(socioRepo repository.SocioRepository, planRepo repository.PlanRepository) *LookupUseCase {
	return &LookupUseCase{socioRepo: socioRepo, planRepo: planRepo, now: time.Now}
}

// Lookup busca un socio por documento dentro del tenant, evalúa su membresía
// y devuelve el payload de control de ingreso.
//
// Devuelve (nil, nil) cuando el documento no existe: el handler lo traduce a
// un cuerpo null con 200, que es lo que espera el front del molinete.
//
// Si el flag activo almacenado difiere del calculado, la corrección se
// persiste ANTES de responder; un fallo de esa escritura se reporta como error
// para no servir un estado recién detectado como obsoleto.
func (uc *LookupUseCase) Lookup(gymID, documento string) (*dto.ControlIngresoResponse, error) {
	socio, err := uc.socioRepo.GetByDocumento(documento, gymID)
	if err != nil {
		return nil, err
	}
	if socio == nil {
		return nil, nil
	}

	plan, err := uc.planRepo.GetByID(socio.PlanID, gymID)
	if err != nil {
		return nil, err
	}
	// plan == nil es tolerado: el evaluador aplica la duración por defecto.

	ev := membership.Evaluar(socio, plan, uc.now())

	if socio.Activo != ev.Activo {
		if err := uc.reconciliar(socio, ev.Activo); err != nil {
			return nil, err
		}
	}

	planNombre := "N/A"
	if plan != nil {
		planNombre = plan.Nombre
	}
	var fotoURL *string
	if socio.FotoURL != "" {
		fotoURL = &socio.FotoURL
	}
	return &dto.ControlIngresoResponse{
		Documento:        socio.Documento,
		NombreCompleto:   socio.NombreCompleto,
		PlanNombre:       planNombre,
		PlanDuracionDias: membership.DuracionDias(plan),
		FechaAlta:        socio.FechaAlta,
		FechaVencimiento: ev.FechaVencimiento,
		DiasRestantes:    ev.DiasRestantes,
		Activo:           ev.Activo,
		Estado:           ev.Estado,
		FotoURL:          fotoURL,
	}, nil
}

// reconciliar persiste la corrección del flag activo de un socio.
// Dos lookups concurrentes pueden corregir a la vez: ambos calculan el mismo
// valor a partir de los mismos datos, así que el último en escribir converge.
func (uc *LookupUseCase) reconciliar(socio *entity.Socio, activo bool) error {
	if err := uc.socioRepo.UpdateActivo(socio.ID, activo); err != nil {
		return err
	}
	socio.Activo = activo
	return nil
}

// ReconciliarTodos recorre los socios del tenant y corrige todo flag activo
// desincronizado. Es el paso explícito de reconciliación, invocable bajo
// demanda (o desde un cron externo) sin pasar por el molinete.
func (uc *LookupUseCase) ReconciliarTodos(gymID string) (*dto.ReconciliacionResponse, error) {
	socios, err := uc.socioRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	ahora := uc.now()
	out := &dto.ReconciliacionResponse{}
	for _, socio := range socios {
		out.Revisados++
		plan, err := uc.planRepo.GetByID(socio.PlanID, gymID)
		if err != nil {
			return nil, err
		}
		ev := membership.Evaluar(socio, plan, ahora)
		if socio.Activo != ev.Activo {
			if err := uc.reconciliar(socio, ev.Activo); err != nil {
				return nil, err
			}
			out.Corregidos++
		}
	}
	return out, nil
}

// PorVencer lista los socios cuya membresía vence dentro de la ventana de
// aviso (7 días). Clasificación de solo lectura: no persiste nada.
func (uc *LookupUseCase) PorVencer(gymID string) ([]dto.SocioPorVencerResponse, error) {
	socios, err := uc.socioRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	ahora := uc.now()
	out := make([]dto.SocioPorVencerResponse, 0)
	for _, socio := range socios {
		plan, err := uc.planRepo.GetByID(socio.PlanID, gymID)
		if err != nil {
			return nil, err
		}
		ev := membership.Evaluar(socio, plan, ahora)
		if ev.Estado != membership.EstadoPorVencer {
			continue
		}
		planNombre := "N/A"
		if plan != nil {
			planNombre = plan.Nombre
		}
		out = append(out, dto.SocioPorVencerResponse{
			Documento:        socio.Documento,
			NombreCompleto:   socio.NombreCompleto,
			Telefono:         socio.Telefono,
			PlanNombre:       planNombre,
			FechaVencimiento: ev.FechaVencimiento,
			DiasRestantes:    ev.DiasRestantes,
		})
	}
	return out, nil
}
