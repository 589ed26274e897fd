package http

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturarLog redirige el logger global a un buffer durante el test.
func capturarLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestInternalError_NoFiltraElDetalleAlCliente(t *testing.T) {
	capturarLog(t)

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return internalError(c, errors.New("pgx: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"error interno del servidor"}`, string(body))
	assert.NotContains(t, string(body), "pgx")
}

func TestInternalError_RegistraElErrorReal(t *testing.T) {
	buf := capturarLog(t)

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return internalError(c, errors.New("pgx: connection refused"))
	})

	_, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "pgx: connection refused")
	assert.Contains(t, buf.String(), "/x")
}

// Los mapeadores de error por recurso derivan los errores desconocidos al
// sobre genérico, nunca al texto del error.
func TestSocioError_DesconocidoRespondeGenerico(t *testing.T) {
	capturarLog(t)

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return socioError(c, errors.New("dial tcp: i/o timeout"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"error interno del servidor"}`, string(body))
}
