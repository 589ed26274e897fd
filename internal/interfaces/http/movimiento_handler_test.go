package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un "hasta" sin hora debe abarcar el día completo: con el corte en la
// medianoche que lo inicia, los movimientos de ese día quedaban afuera
// del listado y del balance.
func TestParseFechaHasta_ExtiendeAlFinalDelDia(t *testing.T) {
	hasta, err := parseFechaHasta("2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, hasta)

	movimiento := time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC)
	assert.False(t, movimiento.After(*hasta), "un movimiento de la tarde del 31 debe entrar en el rango")

	primeroDeFebrero := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, primeroDeFebrero.After(*hasta))
}

func TestParseFechaHasta_RFC3339SeRespetaTalCual(t *testing.T) {
	hasta, err := parseFechaHasta("2024-01-31T12:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, hasta)
	assert.True(t, hasta.Equal(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)))
}

func TestParseFecha_VaciaDevuelveNil(t *testing.T) {
	desde, err := parseFecha("")
	require.NoError(t, err)
	assert.Nil(t, desde)

	hasta, err := parseFechaHasta("")
	require.NoError(t, err)
	assert.Nil(t, hasta)
}

func TestParseFecha_Invalida(t *testing.T) {
	_, err := parseFecha("31/01/2024")
	assert.Error(t, err)
}
