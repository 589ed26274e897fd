package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/athletica/gym-api/internal/application/dto"
	"github.com/athletica/gym-api/pkg/jwt"
)

// LocalPrincipal key del Principal en c.Locals.
const LocalPrincipal = "principal"

// Principal es la identidad autenticada del request. Se arma una sola vez en
// el middleware; los handlers nunca vuelven a inspeccionar claims crudos.
type Principal struct {
	SubjectID  string // id del admin, gimnasio o empleado según el rol
	Rol        string
	GymID      string // vacío para superadmin
	EmpleadoID string // solo rol empleado
	Nombre     string
}

// AuthMiddleware valida el Bearer Token JWT y deja el Principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, Principal{
			SubjectID:  claims.Subject,
			Rol:        claims.Rol,
			GymID:      claims.GymID,
			EmpleadoID: claims.EmpleadoID,
			Nombre:     claims.Nombre,
		})
		return c.Next()
	}
}

// OperadorID identifica a quién registra una operación de caja: el empleado
// autenticado o, cuando opera el admin del gimnasio, su propio id.
func (p Principal) OperadorID() string {
	if p.EmpleadoID != "" {
		return p.EmpleadoID
	}
	return p.SubjectID
}

// GetPrincipal devuelve el Principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return Principal{}
	}
	p, _ := v.(Principal)
	return p
}

// RequireRole corta el request si el Principal no tiene alguno de los roles indicados.
// Sin rol en el token es 401; rol presente pero insuficiente es 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.Rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "no autenticado"})
		}
		for _, rol := range roles {
			if p.Rol == rol {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "permisos insuficientes"})
	}
}

// RequireTenant exige que el Principal pertenezca a un gimnasio (admin o empleado).
// El GymID del token es la única fuente del tenant: nunca se acepta por parámetro.
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.Rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "no autenticado"})
		}
		if p.GymID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "la cuenta no pertenece a un gimnasio"})
		}
		return c.Next()
	}
}
