package order

import (
	"context"
	"time"
)

// StatusChangedEvent é o evento de domínio emitido a cada transição de
// status bem-sucedida
type StatusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	From      Status    `json:"from_status"`
	To        Status    `json:"to_status"`
	Timestamp time.Time `json:"timestamp"`
	ChangedBy string    `json:"changed_by,omitempty"` // ID do usuário que executou a transição
}

// EventPublisher publica eventos de domínio da OS. A entrega (ordem,
// at-least-once) é responsabilidade do consumidor do evento.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent)
}
