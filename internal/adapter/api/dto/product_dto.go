package dto

import (
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	SKU         string          `json:"sku" binding:"required"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Category    string          `json:"category"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Brand       string          `json:"brand,omitempty"`
	Model       string          `json:"model,omitempty"`
	Category    string          `json:"category,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Margin      decimal.Decimal `json:"margin"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de listagem de produtos
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// StockAdjustRequest representa a requisição de ajuste de estoque
type StockAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ToProductResponse converte a entidade para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Brand:       p.Brand,
		Model:       p.Model,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		Margin:      p.Margin(),
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		LowStock:    p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o DTO de resposta
func ToProductListResponse(products []*product.Product, total, page, pageSize int) ProductListResponse {
	resp := ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ToProductResponse(p))
	}
	return resp
}
