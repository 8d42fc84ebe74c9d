package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo é um repositório mínimo para exercitar o workflow
type stubRepo struct {
	mu     sync.Mutex
	orders map[string]*ServiceOrder
}

func newStubRepo(orders ...*ServiceOrder) *stubRepo {
	r := &stubRepo{orders: make(map[string]*ServiceOrder)}
	for _, o := range orders {
		r.orders[o.ID] = o.Clone()
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, o *ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *stubRepo) List(_ context.Context) ([]*ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]*ServiceOrder, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o.Clone())
	}
	return orders, nil
}

func (r *stubRepo) Update(_ context.Context, id string, patch Patch) (*ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := o.Apply(patch); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id string, status Status, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *stubRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders), nil
}

// recordingPublisher guarda os eventos publicados
type recordingPublisher struct {
	mu     sync.Mutex
	events []StatusChangedEvent
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, event StatusChangedEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) recorded() []StatusChangedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]StatusChangedEvent(nil), p.events...)
}

func pendingOrder(t *testing.T, id string) *ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder("cust-1", "celular", "Samsung", "Galaxy S23", "não liga")
	require.NoError(t, err)
	o.ID = id
	return o
}

func TestTransitionToNextStatus(t *testing.T) {
	repo := newStubRepo(pendingOrder(t, "OS-2025-001"))
	pub := &recordingPublisher{}
	w := NewWorkflow(repo, pub)

	fixed := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	o, err := w.Transition(context.Background(), "OS-2025-001", StatusInAnalysis, "user-1")
	require.NoError(t, err)

	assert.Equal(t, StatusInAnalysis, o.Status)
	assert.Equal(t, fixed, o.UpdatedAt)

	stored, err := repo.FindByID(context.Background(), "OS-2025-001")
	require.NoError(t, err)
	assert.Equal(t, StatusInAnalysis, stored.Status)

	events := pub.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, "OS-2025-001", events[0].OrderID)
	assert.Equal(t, StatusPendingApproval, events[0].From)
	assert.Equal(t, StatusInAnalysis, events[0].To)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, "user-1", events[0].ChangedBy)
}

func TestTransitionSkippingStepFails(t *testing.T) {
	repo := newStubRepo(pendingOrder(t, "OS-2025-001"))
	pub := &recordingPublisher{}
	w := NewWorkflow(repo, pub)

	_, err := w.Transition(context.Background(), "OS-2025-001", StatusInRepair, "user-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// O estado não mudou e nenhum evento foi publicado
	stored, findErr := repo.FindByID(context.Background(), "OS-2025-001")
	require.NoError(t, findErr)
	assert.Equal(t, StatusPendingApproval, stored.Status)
	assert.Empty(t, pub.recorded())
}

func TestTransitionSameStatusIsNoOp(t *testing.T) {
	o := pendingOrder(t, "OS-2025-001")
	repo := newStubRepo(o)
	pub := &recordingPublisher{}
	w := NewWorkflow(repo, pub)

	before, err := repo.FindByID(context.Background(), "OS-2025-001")
	require.NoError(t, err)

	result, err := w.Transition(context.Background(), "OS-2025-001", StatusPendingApproval, "user-1")
	require.NoError(t, err)

	assert.Equal(t, StatusPendingApproval, result.Status)
	assert.Equal(t, before.UpdatedAt, result.UpdatedAt, "comando reenviado não altera updated_at")
	assert.Empty(t, pub.recorded())
}

func TestTransitionFromTerminalFails(t *testing.T) {
	o := pendingOrder(t, "OS-2025-001")
	o.Status = StatusAwaitingPickup
	repo := newStubRepo(o)
	w := NewWorkflow(repo, &recordingPublisher{})

	_, err := w.Transition(context.Background(), "OS-2025-001", StatusPendingApproval, "user-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionInvalidStatus(t *testing.T) {
	repo := newStubRepo(pendingOrder(t, "OS-2025-001"))
	w := NewWorkflow(repo, &recordingPublisher{})

	_, err := w.Transition(context.Background(), "OS-2025-001", Status("broken"), "user-1")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionOrderNotFound(t *testing.T) {
	w := NewWorkflow(newStubRepo(), &recordingPublisher{})

	_, err := w.Transition(context.Background(), "OS-2025-999", StatusInAnalysis, "user-1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTransitionFullLifecycle(t *testing.T) {
	repo := newStubRepo(pendingOrder(t, "OS-2025-001"))
	pub := &recordingPublisher{}
	w := NewWorkflow(repo, pub)

	steps := []Status{StatusInAnalysis, StatusInRepair, StatusCompleted, StatusAwaitingPickup}
	for _, target := range steps {
		o, err := w.Transition(context.Background(), "OS-2025-001", target, "user-1")
		require.NoError(t, err)
		assert.Equal(t, target, o.Status)
	}

	assert.Len(t, pub.recorded(), len(steps))
}

func TestTransitionConcurrentOnlyOneWins(t *testing.T) {
	repo := newStubRepo(pendingOrder(t, "OS-2025-001"))
	pub := &recordingPublisher{}
	w := NewWorkflow(repo, pub)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = w.Transition(context.Background(), "OS-2025-001", StatusInAnalysis, "user-1")
		}(i)
	}
	wg.Wait()

	// Todas as chamadas terminam sem erro (a primeira transiciona, as
	// demais veem o status de destino e são no-ops), mas só um evento
	// é publicado.
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, pub.recorded(), 1)

	stored, err := repo.FindByID(context.Background(), "OS-2025-001")
	require.NoError(t, err)
	assert.Equal(t, StatusInAnalysis, stored.Status)
}
