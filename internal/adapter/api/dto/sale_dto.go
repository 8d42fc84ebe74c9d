package dto

import (
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa um item na requisição de venda
type SaleItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleRequest representa a requisição de venda
type SaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	Items         []SaleItemRequest `json:"items" binding:"required"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
}

// SaleItemResponse representa um item na resposta de venda
type SaleItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Discount      decimal.Decimal    `json:"discount"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
	Status        sale.Status        `json:"status"`
	SellerID      string             `json:"seller_id"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse representa a resposta de listagem de vendas
type SaleListResponse struct {
	Sales    []SaleResponse `json:"sales"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToSaleResponse converte a entidade para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	resp := SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Items:         make([]SaleItemResponse, 0, len(s.Items)),
		TotalAmount:   s.TotalAmount,
		Discount:      s.Discount,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		SellerID:      s.SellerID,
		CreatedAt:     s.CreatedAt,
	}

	for _, item := range s.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return resp
}

// ToSaleListResponse converte uma lista de vendas para o DTO de resposta
func ToSaleListResponse(sales []*sale.Sale, total, page, pageSize int) SaleListResponse {
	resp := SaleListResponse{
		Sales:    make([]SaleResponse, 0, len(sales)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, ToSaleResponse(s))
	}
	return resp
}
