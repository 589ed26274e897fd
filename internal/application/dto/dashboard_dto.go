package dto

// DashboardResponse conteos de tenants para el panel del superadmin.
type DashboardResponse struct {
	TotalGimnasios int `json:"totalGimnasios"`
	Activos        int `json:"activos"`
}
