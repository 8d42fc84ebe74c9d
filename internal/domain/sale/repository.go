package sale

import (
	"context"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create registra uma nova venda com seus itens
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas com paginação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// UpdateStatus atualiza o status de uma venda
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)
}
