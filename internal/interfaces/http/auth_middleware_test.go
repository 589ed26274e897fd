package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/athletica/gym-api/internal/interfaces/http"
	pkgjwt "github.com/athletica/gym-api/pkg/jwt"
)

// ── Helpers de test ──────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testSubjectID  = "00000000-0000-0000-0000-000000000001"
	testGymID      = "00000000-0000-0000-0000-000000000002"
	testEmpleadoID = "00000000-0000-0000-0000-000000000003"
	testIssuer     = "athletica-test"
	testExpMin     = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y armar el Principal
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			p := apphttp.GetPrincipal(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": p.Rol,
			})
		},
	)
	return app
}

// tokenFor genera un JWT con los claims indicados.
func tokenFor(t *testing.T, rol, gymID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: testSubjectID},
		Rol:              rol,
		GymID:            gymID,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── Tests RequireRole ────────────────────────────────────────────────────────

// El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin)
	resp := doRequest(t, app, tokenFor(t, pkgjwt.RolAdmin, testGymID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, pkgjwt.RolAdmin, body["rol"])
}

// El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_EmpleadoAccedeRutaAdminOEmpleado(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin, pkgjwt.RolEmpleado)
	resp := doRequest(t, app, tokenFor(t, pkgjwt.RolEmpleado, testGymID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"empleado debe poder acceder a ruta que permite admin o empleado")
}

// Rol insuficiente → HTTP 403 Forbidden.
func TestRequireRole_EmpleadoBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin)
	resp := doRequest(t, app, tokenFor(t, pkgjwt.RolEmpleado, testGymID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"empleado no debe poder acceder a ruta restringida a admin")
}

// El superadmin no entra a rutas de tenant.
func TestRequireRole_SuperadminBloqueadoEnRutaTenant(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin, pkgjwt.RolEmpleado)
	resp := doRequest(t, app, tokenFor(t, pkgjwt.RolSuperadmin, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Token con rol vacío (legacy) → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin)
	resp := doRequest(t, app, tokenFor(t, "", testGymID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")
}

// Sin header Authorization → HTTP 401.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado → HTTP 401.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(pkgjwt.RolAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── Tests RequireTenant ──────────────────────────────────────────────────────

func TestRequireTenant_SinGymID_Retorna403(t *testing.T) {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireTenant(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	// Un token de superadmin no trae gymId.
	resp := doRequest(t, app, tokenFor(t, pkgjwt.RolSuperadmin, ""))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, tokenFor(t, pkgjwt.RolAdmin, testGymID))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ── Tests AuthMiddleware: construcción del Principal ─────────────────────────

func TestAuthMiddleware_ArmaPrincipal(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{
			"subjectId":  p.SubjectID,
			"rol":        p.Rol,
			"gymId":      p.GymID,
			"empleadoId": p.EmpleadoID,
			"nombre":     p.Nombre,
		})
	})

	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: testSubjectID},
		Rol:              pkgjwt.RolEmpleado,
		GymID:            testGymID,
		EmpleadoID:       testEmpleadoID,
		Nombre:           "Juan Pérez",
	}, testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSubjectID, body["subjectId"])
	assert.Equal(t, pkgjwt.RolEmpleado, body["rol"])
	assert.Equal(t, testGymID, body["gymId"])
	assert.Equal(t, testEmpleadoID, body["empleadoId"])
	assert.Equal(t, "Juan Pérez", body["nombre"])
}

// El operador de una operación de caja es el empleado autenticado; cuando
// opera el admin del gimnasio (token sin empleadoId) es su propio id, nunca
// un campo vacío.
func TestPrincipal_OperadorID(t *testing.T) {
	empleado := apphttp.Principal{SubjectID: testSubjectID, Rol: pkgjwt.RolEmpleado, EmpleadoID: testEmpleadoID}
	assert.Equal(t, testEmpleadoID, empleado.OperadorID())

	admin := apphttp.Principal{SubjectID: testSubjectID, Rol: pkgjwt.RolAdmin}
	assert.Equal(t, testSubjectID, admin.OperadorID())
	assert.NotEmpty(t, admin.OperadorID())
}

// ── Tests JWT: integridad del generate/parse ─────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: testSubjectID},
		Rol:              pkgjwt.RolAdmin,
		GymID:            testGymID,
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testSubjectID, claims.Subject)
	assert.Equal(t, pkgjwt.RolAdmin, claims.Rol)
	assert.Equal(t, testGymID, claims.GymID)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: testSubjectID},
		Rol:              pkgjwt.RolAdmin,
	}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: testSubjectID},
		Rol:              pkgjwt.RolAdmin,
	}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
