// Package validation agrupa los predicados puros que protegen toda escritura:
// el servicio nunca persiste una entidad que no los pase. Sin estado, sin
// efectos secundarios; sobre entrada vacía fallan cerrado (false).
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout es el único formato de fecha aceptado en la frontera del servicio.
const DateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// IsValidEmail acepta la forma simple local@dominio.tld.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}

// IsValidPhone acepta un "+" opcional seguido de 7 a 15 dígitos, nada más
// (sin espacios, guiones ni letras).
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	return phoneRe.MatchString(phone)
}

// IsNotEmpty rechaza cadenas vacías o de solo espacios.
func IsNotEmpty(text string) bool {
	return strings.TrimSpace(text) != ""
}

// IsPositiveNumber exige estrictamente mayor que cero.
func IsPositiveNumber(n float64) bool {
	return n > 0
}

// IsPositiveAmount es la variante monetaria de IsPositiveNumber.
func IsPositiveAmount(d decimal.Decimal) bool {
	return d.IsPositive()
}

// IsNonNegative exige mayor o igual a cero.
func IsNonNegative(n int) bool {
	return n >= 0
}

// IsValidDate acepta únicamente fechas de calendario reales en formato
// YYYY-MM-DD (rechaza 2024-02-30, rechaza cualquier otro formato).
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate convierte una fecha ya validada a time.Time (medianoche UTC).
// Devuelve el error de parseo si la cadena no cumple el formato.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
