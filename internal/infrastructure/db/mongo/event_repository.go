package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niini/minishop/internal/core/domain"
)

const orderEventsCollection = "order_events"

// OrderEventRepository appends entries to the order audit trail.
type OrderEventRepository struct {
	coll *mongo.Collection
}

func NewOrderEventRepository(db *mongo.Database) *OrderEventRepository {
	return &OrderEventRepository{coll: db.Collection(orderEventsCollection)}
}

type mongoOrderEvent struct {
	OrderID   string `bson:"order_id"`
	UserID    string `bson:"user_id"`
	Type      string `bson:"type"`
	OldStatus string `bson:"old_status,omitempty"`
	NewStatus string `bson:"new_status,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *OrderEventRepository) Insert(ctx context.Context, event *domain.OrderEvent) error {
	doc := mongoOrderEvent{
		OrderID:   event.OrderID,
		UserID:    event.UserID,
		Type:      string(event.Type),
		OldStatus: string(event.OldStatus),
		NewStatus: string(event.NewStatus),
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}
	return nil
}
