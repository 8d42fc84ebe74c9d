package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrInvalidTransition = errors.New("transição de status não permitida")

// Workflow valida e aplica transições de status da OS. Cada transição é
// serializada por número de OS: validação e commit acontecem sob o mesmo
// lock, liberado em todos os caminhos de saída.
type Workflow struct {
	repo      Repository
	publisher EventPublisher
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewWorkflow cria um novo workflow de transições de status
func NewWorkflow(repo Repository, publisher EventPublisher) *Workflow {
	return &Workflow{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

// lockFor retorna o mutex da OS, criando-o na primeira transição
func (w *Workflow) lockFor(id string) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()

	lock, ok := w.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		w.locks[id] = lock
	}
	return lock
}

// Transition move a OS para o status informado. Apenas o próximo estado
// do fluxo canônico é aceito; repetir o status atual é um no-op
// idempotente, para que comandos reenviados sejam seguros. Em caso de
// sucesso o evento StatusChangedEvent é publicado.
func (w *Workflow) Transition(ctx context.Context, id string, target Status, actorID string) (*ServiceOrder, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(target))
	}

	lock := w.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	o, err := w.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status == target {
		return o, nil
	}

	next, ok := o.Status.Next()
	if !ok || next != target {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}

	now := w.now()
	if err := w.repo.UpdateStatus(ctx, id, target, now); err != nil {
		return nil, err
	}

	from := o.Status
	o.Status = target
	o.UpdatedAt = now

	if w.publisher != nil {
		w.publisher.PublishStatusChanged(ctx, StatusChangedEvent{
			OrderID:   id,
			From:      from,
			To:        target,
			Timestamp: now,
			ChangedBy: actorID,
		})
	}

	return o, nil
}
