package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/opencomercio/gestion-api/pkg/format"
)

func TestCurrencyFormatter_SinDecimalesPorDefecto(t *testing.T) {
	f := format.NewCurrencyFormatter("es-CO", "COP", 0)
	got := f.Format(decimal.NewFromFloat(1250000.75))

	assert.NotContains(t, got, ",75", "por defecto se formatea sin dígitos fraccionarios")
	assert.Contains(t, got, "1", "el monto debe estar presente")
}

func TestCurrencyFormatter_LocaleInvalidoCaeAlPorDefecto(t *testing.T) {
	f := format.NewCurrencyFormatter("no-es-un-locale", "???", 0)
	// No debe entrar en pánico ni devolver vacío: el formateo nunca tumba la vista.
	assert.NotEmpty(t, f.Format(decimal.NewFromInt(100)))
}

func TestShortDate(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "30/08/2026 14:05", format.ShortDate(ts))
}

func TestLongDate(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "30 de agosto de 2026", format.LongDate(ts))
}

func TestMonthLabel(t *testing.T) {
	ts := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Febrero 2026", format.MonthLabel(ts))
}

func TestStatus_EstadosConocidos(t *testing.T) {
	casos := []struct {
		status string
		label  string
		color  string
	}{
		{"pendiente", "Pendiente", "warning"},
		{"procesada", "Procesada", "success"},
		{"rechazada", "Rechazada", "danger"},
		{"emitida", "Emitida", "info"},
		{"pagada", "Pagada", "success"},
	}
	for _, c := range casos {
		b := format.Status(c.status)
		assert.Equal(t, c.label, b.Label, "estado %s", c.status)
		assert.Equal(t, c.color, b.Color, "estado %s", c.status)
		assert.NotEmpty(t, b.Icon, "estado %s debe tener icono", c.status)
	}
}

func TestStatus_DesconocidoUsaFallback(t *testing.T) {
	b := format.Status("estado-nuevo-del-backend")
	assert.Equal(t, "estado-nuevo-del-backend", b.Label, "la etiqueta conserva el valor crudo")
	assert.Equal(t, "secondary", b.Color)
}
