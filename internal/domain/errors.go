package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError indica que un campo de entrada viola una regla concreta.
// Rule es el mensaje que la UI muestra tal cual ("Email inválido", etc.).
// Se produce siempre antes de tocar la persistencia: una validación fallida
// garantiza cero efectos secundarios.
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string { return e.Rule }

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre cualquier ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Validationf construye un ValidationError con formato.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Rule: fmt.Sprintf(format, args...)}
}
