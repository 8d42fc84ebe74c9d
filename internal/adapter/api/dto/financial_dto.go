package dto

import (
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/financial"
	"github.com/shopspring/decimal"
)

// TransactionRequest representa a requisição de lançamento financeiro
type TransactionRequest struct {
	Type          string          `json:"type" binding:"required"`
	Category      string          `json:"category"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
	ReferenceID   string          `json:"reference_id"`
}

// TransactionResponse representa a resposta de lançamento financeiro
type TransactionResponse struct {
	ID            string           `json:"id"`
	Type          financial.Type   `json:"type"`
	Category      string           `json:"category,omitempty"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       time.Time        `json:"due_date"`
	PaidDate      *time.Time       `json:"paid_date,omitempty"`
	Status        financial.Status `json:"status"`
	Overdue       bool             `json:"overdue"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	ReferenceID   string           `json:"reference_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// TransactionListResponse representa a resposta de listagem de lançamentos
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// ToTransactionResponse converte a entidade para o DTO de resposta
func ToTransactionResponse(t *financial.Transaction, now time.Time) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Category:      t.Category,
		Description:   t.Description,
		Amount:        t.Amount,
		DueDate:       t.DueDate,
		PaidDate:      t.PaidDate,
		Status:        t.Status,
		Overdue:       t.IsOverdue(now),
		PaymentMethod: t.PaymentMethod,
		ReferenceID:   t.ReferenceID,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionListResponse converte uma lista de lançamentos para o DTO de resposta
func ToTransactionListResponse(transactions []*financial.Transaction, total, page, pageSize int, now time.Time) TransactionListResponse {
	resp := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(t, now))
	}
	return resp
}
