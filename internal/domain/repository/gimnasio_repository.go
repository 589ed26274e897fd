package repository

import "github.com/athletica/gym-api/internal/domain/entity"

// GimnasioRepository define el puerto de persistencia para tenants (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type GimnasioRepository interface {
	Create(g *entity.Gimnasio) error
	GetByID(id string) (*entity.Gimnasio, error)
	GetByUsername(username string) (*entity.Gimnasio, error)
	List() ([]*entity.Gimnasio, error)
	Update(g *entity.Gimnasio) error
	Delete(id string) error
	// Count y CountActivos alimentan el dashboard de la plataforma.
	Count() (int, error)
	CountActivos() (int, error)
}

// AdminRepository persiste los super-administradores de la plataforma.
type AdminRepository interface {
	Create(a *entity.Admin) error
	GetByEmail(email string) (*entity.Admin, error)
}
