package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/clinica-pro/internal/application/auth"
	"github.com/tu-usuario/clinica-pro/internal/domain"
	"github.com/tu-usuario/clinica-pro/internal/domain/entity"
	"github.com/tu-usuario/clinica-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/clinica-pro/pkg/logger"
)

func newTestUseCase(t *testing.T) *auth.UseCase {
	t.Helper()
	return auth.NewUseCase(memory.NewUserRepository(), logger.Nop())
}

func TestRegister_HasheaLaContrasena(t *testing.T) {
	uc := newTestUseCase(t)

	user, err := uc.Register("vet1", "secreto123", entity.RoleVeterinario)
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "vet1", user.Username)
	assert.Equal(t, entity.RoleVeterinario, user.Role)
	assert.NotEqual(t, "secreto123", user.PasswordHash,
		"la contraseña jamás se almacena en claro")
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegister_RolVacioEsAdmin(t *testing.T) {
	uc := newTestUseCase(t)
	user, err := uc.Register("jefa", "clave", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestRegister_CamposVacios(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Register("", "clave", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register("user", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Register("ana", "clave1", "")
	require.NoError(t, err)

	_, err = uc.Register("ana", "otra-clave", "")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_EscenarioCompleto(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Register("recep1", "mi-clave", entity.RoleRecepcion)
	require.NoError(t, err)

	// Credenciales correctas → usuario.
	user, err := uc.Login("recep1", "mi-clave")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleRecepcion, user.Role)

	// Contraseña incorrecta y usuario fantasma devuelven el mismo (nil, nil):
	// el login no revela qué usernames existen.
	user, err = uc.Login("recep1", "clave-incorrecta")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = uc.Login("no-existe", "mi-clave")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestEnsureDefaultAdmin_Idempotente(t *testing.T) {
	uc := newTestUseCase(t)

	require.NoError(t, uc.EnsureDefaultAdmin("admin123"))
	// Segunda llamada: no falla ni duplica.
	require.NoError(t, uc.EnsureDefaultAdmin("admin123"))

	admin, err := uc.Login(auth.DefaultAdminUsername, "admin123")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
}

func TestEnsureDefaultAdmin_NoPisaUnAdminExistente(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Register(auth.DefaultAdminUsername, "clave-propia", entity.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, uc.EnsureDefaultAdmin("admin123"))

	// La contraseña original sigue vigente; la por defecto no entra.
	user, err := uc.Login(auth.DefaultAdminUsername, "clave-propia")
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = uc.Login(auth.DefaultAdminUsername, "admin123")
	require.NoError(t, err)
	assert.Nil(t, user)
}
