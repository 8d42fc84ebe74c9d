package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Maria Souza", "529.982.247-25", "(11) 98888-7777")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Maria Souza", c.Name)
	assert.Equal(t, "52998224725", c.Document, "documento é guardado sem máscara")
	assert.False(t, c.IsCompany())
	assert.False(t, c.CreatedAt.IsZero())
}

func TestNewCustomerCompany(t *testing.T) {
	c, err := NewCustomer("TecCell Assistência LTDA", "11.444.777/0001-61", "(11) 4002-8922")
	require.NoError(t, err)

	assert.Equal(t, "11444777000161", c.Document)
	assert.True(t, c.IsCompany())
}

func TestNewCustomerValidation(t *testing.T) {
	_, err := NewCustomer("", "52998224725", "tel")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCustomer("Maria", "", "tel")
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = NewCustomer("Maria", "52998224724", "tel")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestCustomerUpdate(t *testing.T) {
	c, err := NewCustomer("Maria Souza", "52998224725", "tel")
	require.NoError(t, err)

	err = c.Update("Maria S. Lima", "11.444.777/0001-61", "novo-tel", "maria@example.com", "Rua A, 10")
	require.NoError(t, err)

	assert.Equal(t, "Maria S. Lima", c.Name)
	assert.Equal(t, "11444777000161", c.Document)
	assert.Equal(t, "maria@example.com", c.Email)

	assert.ErrorIs(t, c.Update("Maria", "52998224725", "tel", "sem-arroba", ""), ErrInvalidEmail)
}
