package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToAllHandlers(t *testing.T) {
	bus := New(logger.NewLogger())

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var received []order.StatusChangedEvent

	handler := func(event order.StatusChangedEvent) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
	}

	bus.Subscribe(handler)
	bus.Subscribe(handler)
	assert.Equal(t, 2, bus.HandlerCount())

	event := order.StatusChangedEvent{
		OrderID:   "OS-2025-001",
		From:      order.StatusPendingApproval,
		To:        order.StatusInAnalysis,
		Timestamp: time.Now(),
	}
	bus.PublishStatusChanged(context.Background(), event)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers não receberam o evento")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	assert.Equal(t, "OS-2025-001", received[0].OrderID)
}

func TestPublishWithoutHandlers(t *testing.T) {
	bus := New(logger.NewLogger())

	assert.NotPanics(t, func() {
		bus.PublishStatusChanged(context.Background(), order.StatusChangedEvent{OrderID: "OS-2025-001"})
	})
}

func TestHandlerPanicDoesNotPropagate(t *testing.T) {
	bus := New(logger.NewLogger())

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(func(order.StatusChangedEvent) {
		defer wg.Done()
		panic("handler quebrado")
	})

	assert.NotPanics(t, func() {
		bus.PublishStatusChanged(context.Background(), order.StatusChangedEvent{OrderID: "OS-2025-001"})
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler não executou")
	}
}
