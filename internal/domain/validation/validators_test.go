package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/clinica-pro/internal/domain/validation"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ana.garcia@email.com", true},
		{"user+tag@dominio.co", true},
		{"USER@DOMINIO.ES", true},
		{"", false},
		{"sin-arroba.com", false},
		{"user@", false},
		{"@dominio.com", false},
		{"user@dominio", false},        // sin TLD
		{"user@dominio.c", false},      // TLD de un carácter
		{"user con espacio@d.com", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validation.IsValidEmail(tc.email), "email: %q", tc.email)
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"600123456", true},
		{"+34600123456", true},
		{"1234567", true},         // mínimo 7 dígitos
		{"123456789012345", true}, // máximo 15 dígitos
		{"", false},
		{"123456", false},             // 6 dígitos
		{"1234567890123456", false},   // 16 dígitos
		{"600-123-456", false},        // guiones
		{"600 123 456", false},        // espacios
		{"telefono", false},
		{"++34600123456", false}, // doble prefijo
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validation.IsValidPhone(tc.phone), "teléfono: %q", tc.phone)
	}
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, validation.IsNotEmpty("Luna"))
	assert.True(t, validation.IsNotEmpty("  a  "))
	assert.False(t, validation.IsNotEmpty(""))
	assert.False(t, validation.IsNotEmpty("   "))
	assert.False(t, validation.IsNotEmpty("\t\n"))
}

func TestIsPositiveNumber(t *testing.T) {
	assert.True(t, validation.IsPositiveNumber(0.01))
	assert.True(t, validation.IsPositiveNumber(100))
	assert.False(t, validation.IsPositiveNumber(0))
	assert.False(t, validation.IsPositiveNumber(-5))
}

func TestIsPositiveAmount(t *testing.T) {
	assert.True(t, validation.IsPositiveAmount(decimal.NewFromFloat(0.01)))
	assert.True(t, validation.IsPositiveAmount(decimal.NewFromInt(150)))
	assert.False(t, validation.IsPositiveAmount(decimal.Zero))
	assert.False(t, validation.IsPositiveAmount(decimal.NewFromInt(-30)))
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, validation.IsNonNegative(0))
	assert.True(t, validation.IsNonNegative(12))
	assert.False(t, validation.IsNonNegative(-1))
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-06-15", true},
		{"2024-02-29", true}, // bisiesto
		{"2023-02-29", false},
		{"2024-02-30", false}, // día inexistente
		{"2024-13-01", false}, // mes inexistente
		{"", false},
		{"15-06-2024", false},
		{"2024/06/15", false},
		{"2024-6-15", false}, // sin cero a la izquierda
		{"hoy", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validation.IsValidDate(tc.date), "fecha: %q", tc.date)
	}
}

func TestParseDate_MedianocheUTC(t *testing.T) {
	got, err := validation.ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = validation.ParseDate("no-es-fecha")
	assert.Error(t, err)
}
