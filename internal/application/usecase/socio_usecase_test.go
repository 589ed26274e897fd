package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/entity"
)

// fakeSocioRepo repositorio en memoria, clave natural (gymID, documento).
type fakeSocioRepo struct {
	socios []*entity.Socio
}

func (f *fakeSocioRepo) Create(s *entity.Socio) error {
	f.socios = append(f.socios, s)
	return nil
}

func (f *fakeSocioRepo) GetByID(id, gymID string) (*entity.Socio, error) {
	for _, s := range f.socios {
		if s.ID == id && s.GymID == gymID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSocioRepo) GetByDocumento(documento, gymID string) (*entity.Socio, error) {
	for _, s := range f.socios {
		if s.Documento == documento && s.GymID == gymID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSocioRepo) ListByGym(gymID string) ([]*entity.Socio, error) {
	var out []*entity.Socio
	for _, s := range f.socios {
		if s.GymID == gymID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSocioRepo) Update(s *entity.Socio) error { return nil }

func (f *fakeSocioRepo) UpdateActivo(id string, activo bool) error {
	for _, s := range f.socios {
		if s.ID == id {
			s.Activo = activo
		}
	}
	return nil
}

func (f *fakeSocioRepo) DeleteByDocumento(documento, gymID string) error {
	for i, s := range f.socios {
		if s.Documento == documento && s.GymID == gymID {
			f.socios = append(f.socios[:i], f.socios[i+1:]...)
			return nil
		}
	}
	return nil
}

func altaValida(documento string) dto.CreateSocioRequest {
	nac := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	alta := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return dto.CreateSocioRequest{
		Documento:          documento,
		NombreCompleto:     "Ana López",
		FechaNacimiento:    &nac,
		Telefono:           "1155667788",
		ContactoEmergencia: "Juan López 1144556677",
		PlanID:             "plan-mensual",
		FechaAlta:          &alta,
	}
}

func TestSocioCreate_AsignaIDYActivoPorDefecto(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	out, err := uc.Create("gym-1", altaValida("30111222"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Activo)
	assert.Equal(t, "30111222", out.Documento)
}

func TestSocioCreate_DocumentoDuplicadoEnElTenant(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	_, err := uc.Create("gym-1", altaValida("30111222"))
	require.NoError(t, err)

	_, err = uc.Create("gym-1", altaValida("30111222"))
	assert.ErrorIs(t, err, domain.ErrDocumentoDuplicado)
}

// El mismo documento en otro gimnasio no es duplicado: la clave natural
// es (gymID, documento).
func TestSocioCreate_MismoDocumentoEnOtroGym(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	_, err := uc.Create("gym-1", altaValida("30111222"))
	require.NoError(t, err)

	_, err = uc.Create("gym-2", altaValida("30111222"))
	assert.NoError(t, err)
}

func TestSocioCreate_CamposObligatorios(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	in := altaValida("30111222")
	in.NombreCompleto = ""
	_, err := uc.Create("gym-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = altaValida("")
	_, err = uc.Create("gym-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSocioUpdate_InexistenteRetornaNotFound(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	_, err := uc.Update("gym-1", altaValida("99999999"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSocioDelete_InexistenteRetornaNotFound(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	err := uc.Delete("gym-1", "99999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSocioList_SoloDelTenant(t *testing.T) {
	repo := &fakeSocioRepo{}
	uc := NewSocioUseCase(repo)

	_, err := uc.Create("gym-1", altaValida("30111222"))
	require.NoError(t, err)
	_, err = uc.Create("gym-2", altaValida("40555666"))
	require.NoError(t, err)

	out, err := uc.List("gym-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "30111222", out[0].Documento)
}
