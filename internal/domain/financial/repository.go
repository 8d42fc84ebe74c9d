package financial

import (
	"context"
)

// Repository define a interface para operações de repositório de
// lançamentos financeiros
type Repository interface {
	// Create cria um novo lançamento
	Create(ctx context.Context, t *Transaction) error

	// FindByID busca um lançamento pelo ID
	FindByID(ctx context.Context, id string) (*Transaction, error)

	// List lista os lançamentos com paginação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Transaction, error)

	// FindOverdue lista os lançamentos pendentes vencidos antes do
	// instante informado
	FindOverdue(ctx context.Context) ([]*Transaction, error)

	// Update atualiza um lançamento existente
	Update(ctx context.Context, t *Transaction) error

	// Delete remove um lançamento
	Delete(ctx context.Context, id string) error

	// Count conta quantos lançamentos existem
	Count(ctx context.Context) (int, error)
}
