package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletica/gym-api/internal/domain/entity"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type fakeSocioRepo struct {
	socios        map[string]*entity.Socio // clave: gymID+"/"+documento
	updatesActivo int
	failUpdate    error
}

var _ repository.SocioRepository = (*fakeSocioRepo)(nil)

func newFakeSocioRepo(socios ...*entity.Socio) *fakeSocioRepo {
	r := &fakeSocioRepo{socios: map[string]*entity.Socio{}}
	for _, s := range socios {
		r.socios[s.GymID+"/"+s.Documento] = s
	}
	return r
}

func (r *fakeSocioRepo) Create(s *entity.Socio) error {
	r.socios[s.GymID+"/"+s.Documento] = s
	return nil
}

func (r *fakeSocioRepo) GetByID(id, gymID string) (*entity.Socio, error) {
	for _, s := range r.socios {
		if s.ID == id && s.GymID == gymID {
			copia := *s
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeSocioRepo) GetByDocumento(documento, gymID string) (*entity.Socio, error) {
	s, ok := r.socios[gymID+"/"+documento]
	if !ok {
		return nil, nil
	}
	copia := *s
	return &copia, nil
}

func (r *fakeSocioRepo) ListByGym(gymID string) ([]*entity.Socio, error) {
	var out []*entity.Socio
	for _, s := range r.socios {
		if s.GymID == gymID {
			copia := *s
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeSocioRepo) Update(s *entity.Socio) error { return nil }

func (r *fakeSocioRepo) UpdateActivo(id string, activo bool) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	r.updatesActivo++
	for _, s := range r.socios {
		if s.ID == id {
			s.Activo = activo
		}
	}
	return nil
}

func (r *fakeSocioRepo) DeleteByDocumento(documento, gymID string) error {
	delete(r.socios, gymID+"/"+documento)
	return nil
}

type fakePlanRepo struct {
	planes map[string]*entity.Plan
}

var _ repository.PlanRepository = (*fakePlanRepo)(nil)

func newFakePlanRepo(planes ...*entity.Plan) *fakePlanRepo {
	r := &fakePlanRepo{planes: map[string]*entity.Plan{}}
	for _, p := range planes {
		r.planes[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) Create(p *entity.Plan) error { r.planes[p.ID] = p; return nil }

func (r *fakePlanRepo) GetByID(id, gymID string) (*entity.Plan, error) {
	p, ok := r.planes[id]
	if !ok || p.GymID != gymID {
		return nil, nil
	}
	return p, nil
}

func (r *fakePlanRepo) ListByGym(gymID string) ([]*entity.Plan, error) { return nil, nil }
func (r *fakePlanRepo) Update(p *entity.Plan) error                    { return nil }
func (r *fakePlanRepo) Delete(id, gymID string) error                  { delete(r.planes, id); return nil }

// ── Helpers ──────────────────────────────────────────────────────────────────

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func armarLookup(ahora string, socioRepo *fakeSocioRepo, planRepo *fakePlanRepo) *LookupUseCase {
	uc := NewLookupUseCase(socioRepo, planRepo)
	uc.now = func() time.Time { return fecha(ahora) }
	return uc
}

func socioValido() *entity.Socio {
	return &entity.Socio{
		ID:             "socio-1",
		GymID:          "gym-1",
		Documento:      "30111222",
		NombreCompleto: "Ana Pérez",
		PlanID:         "plan-1",
		Activo:         true,
		FechaAlta:      fecha("2024-01-01"),
	}
}

func planMensual() *entity.Plan {
	return &entity.Plan{ID: "plan-1", GymID: "gym-1", Nombre: "Mensual", DuracionDias: 30}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLookup_SocioVigenteNoEscribe(t *testing.T) {
	socios := newFakeSocioRepo(socioValido())
	uc := armarLookup("2024-01-15", socios, newFakePlanRepo(planMensual()))

	out, err := uc.Lookup("gym-1", "30111222")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Activo)
	assert.Equal(t, "Mensual", out.PlanNombre)
	assert.Equal(t, 30, out.PlanDuracionDias)
	assert.Equal(t, 16, out.DiasRestantes)
	assert.Equal(t, 0, socios.updatesActivo, "sin desfase no debe haber escritura correctiva")
}

func TestLookup_SocioVencidoCorrigeFlagAntesDeResponder(t *testing.T) {
	socios := newFakeSocioRepo(socioValido()) // activo=true almacenado
	uc := armarLookup("2024-02-05", socios, newFakePlanRepo(planMensual()))

	out, err := uc.Lookup("gym-1", "30111222")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.False(t, out.Activo, "vencido: el payload refleja el estado calculado")
	assert.Equal(t, 0, out.DiasRestantes)
	assert.Equal(t, 1, socios.updatesActivo, "el flag almacenado debe corregirse")

	guardado, _ := socios.GetByDocumento("30111222", "gym-1")
	assert.False(t, guardado.Activo, "la corrección debe quedar persistida")
}

func TestLookup_EsIdempotente(t *testing.T) {
	socios := newFakeSocioRepo(socioValido())
	uc := armarLookup("2024-02-05", socios, newFakePlanRepo(planMensual()))

	primero, err := uc.Lookup("gym-1", "30111222")
	require.NoError(t, err)
	segundo, err := uc.Lookup("gym-1", "30111222")
	require.NoError(t, err)

	assert.Equal(t, primero, segundo, "dos lookups seguidos devuelven el mismo payload")
	assert.Equal(t, 1, socios.updatesActivo, "a lo sumo una escritura correctiva")
}

func TestLookup_DocumentoInexistenteDevuelveNil(t *testing.T) {
	uc := armarLookup("2024-01-15", newFakeSocioRepo(), newFakePlanRepo())

	out, err := uc.Lookup("gym-1", "99999999")
	require.NoError(t, err)
	assert.Nil(t, out, "no encontrado se distingue de error: (nil, nil)")
}

func TestLookup_PlanBorradoUsaDuracionPorDefecto(t *testing.T) {
	socios := newFakeSocioRepo(socioValido())
	uc := armarLookup("2024-01-15", socios, newFakePlanRepo()) // sin planes

	out, err := uc.Lookup("gym-1", "30111222")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "N/A", out.PlanNombre)
	assert.Equal(t, 30, out.PlanDuracionDias)
	assert.Equal(t, fecha("2024-01-31"), out.FechaVencimiento)
}

func TestLookup_FalloDeEscrituraSePropaganNoSeSirveEstadoViejo(t *testing.T) {
	socios := newFakeSocioRepo(socioValido())
	socios.failUpdate = assert.AnError
	uc := armarLookup("2024-02-05", socios, newFakePlanRepo(planMensual()))

	out, err := uc.Lookup("gym-1", "30111222")
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestLookup_NoVeSociosDeOtroTenant(t *testing.T) {
	otro := socioValido()
	otro.GymID = "gym-2"
	socios := newFakeSocioRepo(otro)
	uc := armarLookup("2024-01-15", socios, newFakePlanRepo())

	out, err := uc.Lookup("gym-1", "30111222")
	require.NoError(t, err)
	assert.Nil(t, out, "el documento existe pero en otro gimnasio")
}

func TestReconciliarTodos(t *testing.T) {
	vencido := socioValido() // alta 2024-01-01, quedará vencido
	vigente := socioValido()
	vigente.ID = "socio-2"
	vigente.Documento = "40555666"
	vigente.FechaAlta = fecha("2024-02-01")

	socios := newFakeSocioRepo(vencido, vigente)
	uc := armarLookup("2024-02-10", socios, newFakePlanRepo(planMensual()))

	out, err := uc.ReconciliarTodos("gym-1")
	require.NoError(t, err)

	assert.Equal(t, 2, out.Revisados)
	assert.Equal(t, 1, out.Corregidos, "solo el vencido tenía el flag desfasado")
}

func TestPorVencer(t *testing.T) {
	porVencer := socioValido() // vence 2024-01-31
	lejos := socioValido()
	lejos.ID = "socio-2"
	lejos.Documento = "40555666"
	lejos.FechaAlta = fecha("2024-01-20") // vence 2024-02-19

	socios := newFakeSocioRepo(porVencer, lejos)
	uc := armarLookup("2024-01-28", socios, newFakePlanRepo(planMensual()))

	out, err := uc.PorVencer("gym-1")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "30111222", out[0].Documento)
	assert.Equal(t, 3, out[0].DiasRestantes)
}
