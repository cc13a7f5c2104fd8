// Package auth implementa registro, autenticación y el bootstrap del
// administrador por defecto. Las contraseñas solo existen en claro dentro de
// la llamada: se persisten como hash bcrypt (con sal propia) y jamás se
// registran en logs.
package auth

import (
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminUsername nombre del usuario creado por EnsureDefaultAdmin.
const DefaultAdminUsername = "admin"

// Logger colaborador de logging del caso de uso.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// UseCase casos de uso de autenticación sobre el repositorio de usuarios.
type UseCase struct {
	users repository.UserRepository
	log   Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, log Logger) *UseCase {
	return &UseCase{users: users, log: log}
}

// Register crea un usuario con la contraseña hasheada. Devuelve
// domain.ErrDuplicate si el username ya existe (comparación exacta,
// sensible a mayúsculas). Role vacío equivale a "admin".
func (uc *UseCase) Register(username, password, role string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, domain.Validationf("Usuario y contraseña son obligatorios")
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		uc.log.Errorf("error consultando usuario %q: %v", username, err)
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = entity.RoleAdmin
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.users.Create(user); err != nil {
		uc.log.Errorf("error creando usuario %q: %v", username, err)
		return nil, err
	}
	uc.log.Infof("usuario creado: %d", user.ID)
	return user, nil
}

// Login devuelve el usuario si username existe y la contraseña coincide con
// el hash almacenado. Devuelve (nil, nil) tanto para "usuario no existe"
// como para "contraseña incorrecta": no se distingue a propósito, para no
// filtrar qué usernames están registrados.
func (uc *UseCase) Login(username, password string) (*entity.User, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		uc.log.Errorf("error consultando usuario %q: %v", username, err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

// EnsureDefaultAdmin garantiza que exista el usuario "admin"; si falta lo
// registra con la contraseña por defecto. Idempotente: llamadas repetidas
// nunca fallan ni duplican.
func (uc *UseCase) EnsureDefaultAdmin(defaultPassword string) error {
	existing, err := uc.users.GetByUsername(DefaultAdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	if _, err := uc.Register(DefaultAdminUsername, defaultPassword, entity.RoleAdmin); err != nil {
		// Carrera benigna: otro arranque lo creó entre la consulta y el insert.
		if err == domain.ErrDuplicate {
			return nil
		}
		return err
	}
	uc.log.Infof("usuario administrador por defecto creado")
	return nil
}
