// Package eventbus fornece um barramento de eventos em memória para os
// eventos de domínio da OS.
package eventbus

import (
	"context"
	"sync"

	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
)

// Handler processa um evento de mudança de status
type Handler func(event order.StatusChangedEvent)

// Bus implementa order.EventPublisher com entrega assíncrona em
// processo. Garantias de entrega são responsabilidade dos assinantes.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   logger.Logger
}

// New cria um novo barramento de eventos
func New(logger logger.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registra um handler para eventos de mudança de status
func (b *Bus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
}

// PublishStatusChanged implementa order.EventPublisher. Os handlers
// rodam em goroutines para não bloquear a transição.
func (b *Bus) PublishStatusChanged(_ context.Context, event order.StatusChangedEvent) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil && b.logger != nil {
					b.logger.Error("pânico em handler de evento", "order_id", event.OrderID, "panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}

// HandlerCount retorna o número de handlers registrados
func (b *Bus) HandlerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
