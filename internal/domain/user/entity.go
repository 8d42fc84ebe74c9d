package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyEmail     = errors.New("email não pode ser vazio")
	ErrInvalidRole    = errors.New("papel de usuário inválido")
	ErrUserNotFound   = errors.New("usuário não encontrado")
	ErrDuplicateEmail = errors.New("usuário com mesmo email já existe")
)

// Role representa o papel/função do usuário
type Role string

const (
	RoleAdmin      Role = "admin"      // Administrador do sistema
	RoleTechnician Role = "technician" // Técnico de bancada
	RoleSeller     Role = "seller"     // Vendedor de balcão
	RoleFinancial  Role = "financial"  // Financeiro
)

// IsValid verifica se o papel pertence ao enum
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleSeller, RoleFinancial:
		return true
	}
	return false
}

// Status representa o status do usuário
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User representa um usuário do sistema
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role        Role       `json:"role"`
	Status      Status     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser cria um novo usuário ativo
func NewUser(name, email string, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}

	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     strings.ToLower(email),
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
