package order

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de ordens
// de serviço
type Repository interface {
	// Create persiste uma nova OS. Quando o ID vem vazio, o repositório
	// atribui o próximo número da sequência anual (OS-YYYY-NNN). Retorna
	// ErrDuplicateOrder se o número já existir.
	Create(ctx context.Context, o *ServiceOrder) error

	// FindByID busca uma OS pelo número. Retorna ErrOrderNotFound se
	// não existir.
	FindByID(ctx context.Context, id string) (*ServiceOrder, error)

	// List retorna todas as ordens, mais recentes primeiro
	List(ctx context.Context) ([]*ServiceOrder, error)

	// Update aplica uma atualização parcial (nunca status/ID) e retorna
	// a OS atualizada
	Update(ctx context.Context, id string, patch Patch) (*ServiceOrder, error)

	// UpdateStatus grava a mudança de status e o novo updated_at. É o
	// ponto de commit do workflow de transições.
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error

	// Delete remove uma OS. A remoção é idempotente: remover um número
	// inexistente não é erro.
	Delete(ctx context.Context, id string) error

	// Count conta quantas ordens existem
	Count(ctx context.Context) (int, error)
}
