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

// OrderEventService persists audit events dispatched by the worker pool.
type OrderEventService struct {
	repo   ports.OrderEventRepository
	logger zerolog.Logger
}

func NewOrderEventService(repo ports.OrderEventRepository, logger zerolog.Logger) *OrderEventService {
	return &OrderEventService{repo: repo, logger: logger}
}

// Process writes a single event to the audit trail.
func (s *OrderEventService) Process(ctx context.Context, event domain.OrderEvent) error {
	start := time.Now()
	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.OrderEventsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process order event: %w", err)
	}

	metrics.OrderEventsProcessedTotal.WithLabelValues(string(event.Type)).Inc()
	metrics.OrderEventProcessingDuration.WithLabelValues(string(event.Type)).Observe(time.Since(start).Seconds())

	s.logger.Debug().
		Str("order_id", event.OrderID).
		Str("type", string(event.Type)).
		Msg("order event recorded")
	return nil
}
