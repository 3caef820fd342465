package ports

import (
	"context"

	"github.com/niini/minishop/internal/core/domain"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

// CreateOrderInput carries all data needed to create a new order.
type CreateOrderInput struct {
	UserID      string
	TotalAmount float64
	Items       []OrderItemInput
}

// OrderService defines the use-case operations of the order service.
type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	// UpdateStatus fails with domain.ErrInvalidStatus when status is not part
	// of the closed enumeration.
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderEventSink receives audit events for asynchronous processing. Enqueue is
// fire-and-forget from the request path.
type OrderEventSink interface {
	Enqueue(event domain.OrderEvent)
}

// OrderEventProcessor persists a single audit event; implementations are
// driven by the dispatcher workers.
type OrderEventProcessor interface {
	Process(ctx context.Context, event domain.OrderEvent) error
}
