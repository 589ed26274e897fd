package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles reconocidos por la plataforma.
const (
	RolSuperadmin = "superadmin" // administrador de la plataforma (alta de gimnasios)
	RolAdmin      = "admin"      // dueño/cuenta principal de un gimnasio
	RolEmpleado   = "empleado"   // empleado de un gimnasio
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// GymID delimita el tenant; el middleware de auth lo traduce a un Principal tipado
// y ningún handler vuelve a inspeccionar claims crudos.
type Claims struct {
	jwt.RegisteredClaims
	Rol        string `json:"rol"`
	GymID      string `json:"gymId,omitempty"`
	EmpleadoID string `json:"empleadoId,omitempty"`
	Nombre     string `json:"nombre,omitempty"`
}

// Generate genera un token JWT firmado HS256 con los claims de la aplicación.
func Generate(secret string, c Claims, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   c.Subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims completos.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
