package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrEmptyDocument     = errors.New("documento não pode ser vazio")
	ErrInvalidDocument   = errors.New("documento inválido")
	ErrInvalidEmail      = errors.New("email inválido")
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrDuplicateDocument = errors.New("cliente com mesmo documento já existe")
)

// Customer representa um cliente da assistência técnica
type Customer struct {
	ID        string    `json:"id"`                  // ID do Cliente
	Name      string    `json:"name"`                // Nome/Razão Social
	Document  string    `json:"document"`            // CPF/CNPJ (somente dígitos)
	Phone     string    `json:"phone"`               // Telefone
	Email     string    `json:"email,omitempty"`     // Email
	Address   string    `json:"address,omitempty"`   // Endereço
	CreatedAt time.Time `json:"created_at"`          // Data de Criação
	UpdatedAt time.Time `json:"updated_at"`          // Data de Atualização
}

// NewCustomer cria um novo cliente
func NewCustomer(name, document, phone string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if strings.TrimSpace(document) == "" {
		return nil, ErrEmptyDocument
	}

	if err := ValidateDocument(document); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  NormalizeDocument(document),
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, document, phone, email, address string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(document) == "" {
		return ErrEmptyDocument
	}

	if err := ValidateDocument(document); err != nil {
		return err
	}

	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	c.Name = name
	c.Document = NormalizeDocument(document)
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()

	return nil
}

// IsCompany indica se o documento do cliente é um CNPJ
func (c *Customer) IsCompany() bool {
	return len(c.Document) == 14
}
