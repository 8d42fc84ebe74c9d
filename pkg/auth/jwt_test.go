package auth

import (
	"testing"

	"github.com/hugohenrick/erp-assistencia/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	service, err := NewJWTService()
	require.NoError(t, err)
	return service
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(t)

	u, err := user.NewUser("Carlos", "carlos@oficina.com", user.RoleTechnician)
	require.NoError(t, err)

	token, err := service.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "carlos@oficina.com", claims.Email)
	assert.Equal(t, "technician", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	service := newTestService(t)

	u, err := user.NewUser("Carlos", "carlos@oficina.com", user.RoleAdmin)
	require.NoError(t, err)

	token, err := service.GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "outra-chave")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
