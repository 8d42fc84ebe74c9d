package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, quantity, minQuantity int) *Product {
	t.Helper()
	p, err := NewProduct("Tela iPhone 13", "TLA-IP13", "Apple", "iPhone 13", "telas",
		decimal.NewFromFloat(180.00), decimal.NewFromFloat(350.00), quantity, minQuantity)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	p := newTestProduct(t, 10, 3)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "TLA-IP13", p.SKU)
	assert.Equal(t, 10, p.Quantity)
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("", "SKU", "", "", "", decimal.Zero, decimal.Zero, 0, 0)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Nome", " ", "", "", "", decimal.Zero, decimal.Zero, 0, 0)
	assert.ErrorIs(t, err, ErrEmptySKU)

	_, err = NewProduct("Nome", "SKU", "", "", "", decimal.NewFromFloat(-1), decimal.Zero, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Nome", "SKU", "", "", "", decimal.Zero, decimal.Zero, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestMargin(t *testing.T) {
	p := newTestProduct(t, 10, 3)

	// (350 - 180) / 350
	want := decimal.NewFromFloat(170).Div(decimal.NewFromFloat(350))
	assert.True(t, p.Margin().Equal(want), "margem %s", p.Margin())

	// Preço de venda zero não divide
	p.SalePrice = decimal.Zero
	assert.True(t, p.Margin().IsZero())
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, newTestProduct(t, 2, 3).IsLowStock())
	assert.False(t, newTestProduct(t, 3, 3).IsLowStock(), "igual ao mínimo não é estoque baixo")
	assert.False(t, newTestProduct(t, 5, 3).IsLowStock())
}

func TestAdjustStock(t *testing.T) {
	p := newTestProduct(t, 5, 1)

	require.NoError(t, p.AdjustStock(3))
	assert.Equal(t, 8, p.Quantity)

	require.NoError(t, p.AdjustStock(-8))
	assert.Equal(t, 0, p.Quantity)

	assert.ErrorIs(t, p.AdjustStock(-1), ErrInsufficientStock)
	assert.Equal(t, 0, p.Quantity, "ajuste rejeitado não altera o estoque")
}
