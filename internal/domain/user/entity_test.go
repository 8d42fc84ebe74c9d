package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Carlos Técnico", "carlos@oficina.com", RoleTechnician)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, StatusActive, u.Status)
	assert.True(t, u.IsActive())
	assert.False(t, u.IsAdmin())
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "carlos@oficina.com", RoleTechnician)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Carlos", "", RoleTechnician)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("Carlos", "carlos@oficina.com", Role("gerente"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleTechnician, RoleSeller, RoleFinancial} {
		assert.True(t, r.IsValid(), "perfil %s", r)
	}
	assert.False(t, Role("gerente").IsValid())
}

func TestPassword(t *testing.T) {
	u, err := NewUser("Carlos", "carlos@oficina.com", RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, u.SetPassword("segredo123"))
	assert.NotEqual(t, "segredo123", u.Password, "a senha é guardada com hash")

	assert.True(t, u.CheckPassword("segredo123"))
	assert.False(t, u.CheckPassword("errada"))
}
