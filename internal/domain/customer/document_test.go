package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDocument(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeDocument("529.982.247-25"))
	assert.Equal(t, "11444777000161", NormalizeDocument("11.444.777/0001-61"))
	assert.Equal(t, "", NormalizeDocument("abc"))
}

func TestValidateDocumentCPF(t *testing.T) {
	assert.NoError(t, ValidateDocument("529.982.247-25"))
	assert.NoError(t, ValidateDocument("52998224725"))

	// Dígito verificador errado
	assert.ErrorIs(t, ValidateDocument("52998224724"), ErrInvalidDocument)

	// Sequência repetida passa no cálculo mas não é documento válido
	assert.ErrorIs(t, ValidateDocument("111.111.111-11"), ErrInvalidDocument)
}

func TestValidateDocumentCNPJ(t *testing.T) {
	assert.NoError(t, ValidateDocument("11.444.777/0001-61"))
	assert.NoError(t, ValidateDocument("11444777000161"))

	assert.ErrorIs(t, ValidateDocument("11444777000162"), ErrInvalidDocument)
	assert.ErrorIs(t, ValidateDocument("11111111111111"), ErrInvalidDocument)
}

func TestValidateDocumentLength(t *testing.T) {
	assert.ErrorIs(t, ValidateDocument("1234567890"), ErrInvalidDocument)
	assert.ErrorIs(t, ValidateDocument("123456789012345"), ErrInvalidDocument)
	assert.ErrorIs(t, ValidateDocument(""), ErrInvalidDocument)
}
