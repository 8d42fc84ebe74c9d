// Package memory fornece repositórios em memória, usados nos testes e
// em instalações de bancada única sem banco de dados.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
)

// OrderRepository implementa order.Repository guardando as ordens em um
// mapa protegido por RWMutex. Leituras devolvem cópias, de forma que
// list/search/stats observem sempre um snapshot consistente.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.ServiceOrder
	seq    map[int]int // última sequência emitida por ano
	now    func() time.Time
}

// NewOrderRepository cria um repositório de ordens em memória
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*order.ServiceOrder),
		seq:    make(map[int]int),
		now:    time.Now,
	}
}

// Create implementa order.Repository.Create
func (r *OrderRepository) Create(_ context.Context, o *order.ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if o.ID == "" {
		// A sequência pula números já ocupados por ordens criadas com
		// número explícito, para nunca sobrescrever uma OS existente
		year := now.Year()
		for {
			r.seq[year]++
			id := order.FormatID(year, r.seq[year])
			if _, exists := r.orders[id]; !exists {
				o.ID = id
				break
			}
		}
	} else {
		if err := order.ValidateID(o.ID); err != nil {
			return err
		}
		if _, exists := r.orders[o.ID]; exists {
			return order.ErrDuplicateOrder
		}
	}

	o.Status = order.StatusPendingApproval
	o.CreatedAt = now
	o.UpdatedAt = now

	r.orders[o.ID] = o.Clone()
	return nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o.Clone(), nil
}

// List implementa order.Repository.List: mais recentes primeiro
func (r *OrderRepository) List(_ context.Context) ([]*order.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.ServiceOrder, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o.Clone())
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// Update implementa order.Repository.Update
func (r *OrderRepository) Update(_ context.Context, id string, patch order.Patch) (*order.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}

	updated := o.Clone()
	if err := updated.Apply(patch); err != nil {
		return nil, err
	}

	r.orders[id] = updated
	return updated.Clone(), nil
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status order.Status, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}

	o.Status = status
	o.UpdatedAt = updatedAt
	return nil
}

// Delete implementa order.Repository.Delete. Remover um número
// inexistente é um no-op.
func (r *OrderRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.orders, id)
	return nil
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders), nil
}
