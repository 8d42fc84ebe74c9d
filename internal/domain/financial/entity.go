package financial

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription     = errors.New("descrição não pode ser vazia")
	ErrInvalidType          = errors.New("tipo de lançamento inválido")
	ErrInvalidAmount        = errors.New("valor não pode ser negativo")
	ErrTransactionNotFound  = errors.New("lançamento financeiro não encontrado")
	ErrAlreadyPaid          = errors.New("lançamento já está pago")
)

// Type representa o tipo do lançamento financeiro
type Type string

const (
	TypeIncome  Type = "income"  // Receita
	TypeExpense Type = "expense" // Despesa
)

// IsValid verifica se o tipo pertence ao enum
func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Status representa o estado do lançamento
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Transaction representa um lançamento financeiro (conta a pagar/receber)
type Transaction struct {
	ID            string          `json:"id"`
	Type          Type            `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	Status        Status          `json:"status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"` // número da OS ou ID da venda
	CreatedAt     time.Time       `json:"created_at"`
}

// NewTransaction cria um novo lançamento financeiro com status pendente
func NewTransaction(txType Type, category, description string, amount decimal.Decimal, dueDate time.Time, referenceID string) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, ErrInvalidType
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	return &Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Category:    category,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      StatusPending,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}, nil
}

// IsOverdue indica atraso: lançamento pendente com vencimento anterior
// ao instante informado
func (t *Transaction) IsOverdue(now time.Time) bool {
	return t.Status == StatusPending && t.DueDate.Before(now)
}

// MarkPaid registra o pagamento do lançamento
func (t *Transaction) MarkPaid(paidAt time.Time, paymentMethod string) error {
	if t.Status == StatusPaid {
		return ErrAlreadyPaid
	}

	t.Status = StatusPaid
	t.PaidDate = &paidAt
	t.PaymentMethod = paymentMethod
	return nil
}
