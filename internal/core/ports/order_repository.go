package ports

import (
	"context"

	"github.com/niini/minishop/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Items are
// embedded in the order document, so they live and die with their order.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	// UpdateStatus sets the new status and refreshes updated_at, returning the
	// updated order. Returns domain.ErrOrderNotFound when the id is absent.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderEventRepository appends entries to the order audit trail.
type OrderEventRepository interface {
	Insert(ctx context.Context, event *domain.OrderEvent) error
}
