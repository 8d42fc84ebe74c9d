package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName           = errors.New("nome não pode ser vazio")
	ErrEmptySKU            = errors.New("SKU não pode ser vazio")
	ErrInvalidPrice        = errors.New("preço não pode ser negativo")
	ErrInvalidQuantity     = errors.New("quantidade não pode ser negativa")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrDuplicateSKU        = errors.New("produto com mesmo SKU já existe")
)

// Product representa um produto/peça do estoque da assistência
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"min_quantity"`
	SerialNumber string          `json:"serial_number,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name, sku, brand, model, category string, costPrice, salePrice decimal.Decimal, quantity, minQuantity int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if strings.TrimSpace(sku) == "" {
		return nil, ErrEmptySKU
	}

	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	if quantity < 0 || minQuantity < 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		SKU:         sku,
		Brand:       brand,
		Model:       model,
		Category:    category,
		CostPrice:   costPrice,
		SalePrice:   salePrice,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Margin retorna a margem derivada: (sale_price - cost_price) / sale_price.
// Nunca é persistida; com preço de venda zero a margem é zero.
func (p *Product) Margin() decimal.Decimal {
	if p.SalePrice.IsZero() {
		return decimal.Zero
	}
	return p.SalePrice.Sub(p.CostPrice).Div(p.SalePrice)
}

// IsLowStock indica estoque baixo: quantidade abaixo do mínimo configurado
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.MinQuantity
}

// Update atualiza os dados do produto
func (p *Product) Update(name, brand, model, category string, costPrice, salePrice decimal.Decimal, minQuantity int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if costPrice.IsNegative() || salePrice.IsNegative() {
		return ErrInvalidPrice
	}

	if minQuantity < 0 {
		return ErrInvalidQuantity
	}

	p.Name = name
	p.Brand = brand
	p.Model = model
	p.Category = category
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.MinQuantity = minQuantity
	p.UpdatedAt = time.Now()

	return nil
}

// AdjustStock soma delta à quantidade em estoque (negativo para baixa).
// O estoque nunca fica negativo.
func (p *Product) AdjustStock(delta int) error {
	if p.Quantity+delta < 0 {
		return ErrInsufficientStock
	}
	p.Quantity += delta
	p.UpdatedAt = time.Now()
	return nil
}
