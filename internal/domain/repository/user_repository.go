package repository

import "github.com/tu-usuario/clinica-pro/internal/domain/entity"

// UserRepository puerto de persistencia para User.
// GetByUsername compara el username exacto (sensible a mayúsculas).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
