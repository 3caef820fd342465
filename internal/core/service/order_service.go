package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
	"github.com/niini/minishop/internal/metrics"
)

// OrderService implements order CRUD. New orders always start in PENDING;
// status updates are checked against the closed enumeration. Lifecycle events
// are handed to the sink and written to the audit trail off the request path.
type OrderService struct {
	orders ports.OrderRepository
	events ports.OrderEventSink
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, events ports.OrderEventSink, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, events: events, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		UserID:      input.UserID,
		TotalAmount: input.TotalAmount,
		Status:      domain.OrderPending,
		Items:       make([]domain.OrderItem, 0, len(input.Items)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.enqueue(domain.OrderEvent{
		OrderID:   created.ID,
		UserID:    created.UserID,
		Type:      domain.EventOrderCreated,
		NewStatus: created.Status,
		Timestamp: now,
	})

	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Int("items", len(created.Items)).Msg("order created")
	return created, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	current, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.enqueue(domain.OrderEvent{
		OrderID:   updated.ID,
		UserID:    updated.UserID,
		Type:      domain.EventStatusChanged,
		OldStatus: current.Status,
		NewStatus: updated.Status,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("order_id", id).Str("from", string(current.Status)).Str("to", status).Msg("order status updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.enqueue(domain.OrderEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Type:      domain.EventOrderDeleted,
		OldStatus: order.Status,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

func (s *OrderService) enqueue(event domain.OrderEvent) {
	if s.events != nil {
		s.events.Enqueue(event)
	}
}
