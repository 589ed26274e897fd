package usecase

import (
	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain/repository"
)

// DashboardUseCase conteos de tenants para el panel del superadmin.
type DashboardUseCase struct {
	gimnasioRepo repository.GimnasioRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(gimnasioRepo repository.GimnasioRepository) *DashboardUseCase {
	return &DashboardUseCase{gimnasioRepo: gimnasioRepo}
}

// Resumen devuelve el total de gimnasios y cuántos están activos.
func (uc *DashboardUseCase) Resumen() (*dto.DashboardResponse, error) {
	total, err := uc.gimnasioRepo.Count()
	if err != nil {
		return nil, err
	}
	activos, err := uc.gimnasioRepo.CountActivos()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{TotalGimnasios: total, Activos: activos}, nil
}
