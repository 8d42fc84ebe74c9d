package sale

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-assistencia/internal/domain/customer"
	"github.com/hugohenrick/erp-assistencia/internal/domain/product"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems              = errors.New("venda deve ter ao menos um item")
	ErrEmptySellerID        = errors.New("vendedor não informado")
	ErrEmptyProductID       = errors.New("produto não informado")
	ErrInvalidQuantity      = errors.New("quantidade deve ser maior que zero")
	ErrInvalidUnitPrice     = errors.New("preço unitário não pode ser negativo")
	ErrInvalidDiscount      = errors.New("desconto não pode ser negativo")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrSaleNotFound         = errors.New("venda não encontrada")
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"        // Dinheiro
	PaymentDebit       PaymentMethod = "debit"       // Cartão de débito
	PaymentCredit      PaymentMethod = "credit"      // Cartão de crédito
	PaymentPix         PaymentMethod = "pix"         // Pix
	PaymentInstallment PaymentMethod = "installment" // Parcelado
)

// IsValid verifica se a forma de pagamento pertence ao enum
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentPix, PaymentInstallment:
		return true
	}
	return false
}

// Status representa o estado da venda
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// SaleItem representa um item de venda. O total do item é sempre
// quantidade × preço unitário, garantido na construção.
type SaleItem struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"product_id"`
	Product    *product.Product `json:"product,omitempty"`
	Quantity   int              `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

// NewSaleItem cria um item de venda calculando o total
func NewSaleItem(productID string, quantity int, unitPrice decimal.Decimal) (SaleItem, error) {
	if strings.TrimSpace(productID) == "" {
		return SaleItem{}, ErrEmptyProductID
	}

	if quantity <= 0 {
		return SaleItem{}, ErrInvalidQuantity
	}

	if unitPrice.IsNegative() {
		return SaleItem{}, ErrInvalidUnitPrice
	}

	return SaleItem{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Sale representa uma venda de balcão
type Sale struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Customer      *customer.Customer `json:"customer,omitempty"`
	Items         []SaleItem         `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"` // soma dos itens menos o desconto
	Discount      decimal.Decimal    `json:"discount"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	Status        Status             `json:"status"`
	SellerID      string             `json:"seller_id"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NewSale cria uma venda calculando o total a partir dos itens
func NewSale(customerID string, items []SaleItem, discount decimal.Decimal, paymentMethod PaymentMethod, sellerID string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	if strings.TrimSpace(sellerID) == "" {
		return nil, ErrEmptySellerID
	}

	if discount.IsNegative() {
		return nil, ErrInvalidDiscount
	}

	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	total = total.Sub(discount)

	return &Sale{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		Items:         items,
		TotalAmount:   total,
		Discount:      discount,
		PaymentMethod: paymentMethod,
		Status:        StatusCompleted,
		SellerID:      sellerID,
		CreatedAt:     time.Now(),
	}, nil
}

// Cancel marca a venda como cancelada
func (s *Sale) Cancel() {
	s.Status = StatusCancelled
}
