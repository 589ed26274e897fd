package auth

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/internal/domain"
	"github.com/athletica/gym-api/internal/domain/repository"
	"github.com/athletica/gym-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login de plataforma y de gimnasio.
type AuthUseCase struct {
	adminRepo    repository.AdminRepository
	gimnasioRepo repository.GimnasioRepository
	empleadoRepo repository.EmpleadoRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	adminRepo repository.AdminRepository,
	gimnasioRepo repository.GimnasioRepository,
	empleadoRepo repository.EmpleadoRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		adminRepo:    adminRepo,
		gimnasioRepo: gimnasioRepo,
		empleadoRepo: empleadoRepo,
		jwtCfg:       jwtCfg,
	}
}

// LoginPlataforma verifica credenciales del super-administrador y emite un token rol=superadmin.
func (uc *AuthUseCase) LoginPlataforma(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: admin.ID},
		Rol:              jwt.RolSuperadmin,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// LoginGimnasio autentica la cuenta de un gimnasio (rol=admin, por username)
// o un empleado (rol=empleado, por email). Cuenta inactiva → ErrCuentaInactiva.
func (uc *AuthUseCase) LoginGimnasio(in dto.GymLoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" || in.Rol == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Rol {
	case jwt.RolAdmin:
		return uc.loginAdmin(in)
	case jwt.RolEmpleado:
		return uc.loginEmpleado(in)
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (uc *AuthUseCase) loginAdmin(in dto.GymLoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	gym, err := uc.gimnasioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if !gym.Activo {
		return nil, domain.ErrCuentaInactiva
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gym.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: gym.ID},
		Rol:              jwt.RolAdmin,
		GymID:            gym.ID,
		Nombre:           gym.GymName,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func (uc *AuthUseCase) loginEmpleado(in dto.GymLoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.empleadoRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.PasswordHash == "" {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if !emp.Activo {
		return nil, domain.ErrCuentaInactiva
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	// El empleado hereda el alcance del gimnasio; el gimnasio debe existir y estar activo.
	gym, err := uc.gimnasioRepo.GetByID(emp.GymID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domain.ErrNotFound
	}
	if !gym.Activo {
		return nil, domain.ErrCuentaInactiva
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: emp.ID},
		Rol:              jwt.RolEmpleado,
		GymID:            emp.GymID,
		EmpleadoID:       emp.ID,
		Nombre:           emp.NombreCompleto,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
