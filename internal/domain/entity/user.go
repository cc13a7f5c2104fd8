package entity

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleRecepcion   = "recepcion"
	RoleVeterinario = "veterinario"
)

// User representa un usuario del sistema (acceso a la aplicación).
type User struct {
	ID           int64
	Username     string // único, comparación sensible a mayúsculas
	PasswordHash string // bcrypt hash, nunca la contraseña en claro
	Role         string // ver constantes Role*
}
