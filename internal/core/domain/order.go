package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderPending:   {},
	OrderConfirmed: {},
	OrderShipped:   {},
	OrderDelivered: {},
	OrderCancelled: {},
}

// IsValid reports whether the status belongs to the closed enumeration.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// OrderItem is exclusively owned by its order and is deleted with it.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the aggregate root of the order service.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderEventType classifies entries in the order audit trail.
type OrderEventType string

const (
	EventOrderCreated  OrderEventType = "order_created"
	EventStatusChanged OrderEventType = "status_changed"
	EventOrderDeleted  OrderEventType = "order_deleted"
)

// OrderEvent records a single lifecycle change for auditing. Events are
// written asynchronously and are not part of the request/response path.
type OrderEvent struct {
	OrderID   string         `json:"order_id"`
	UserID    string         `json:"user_id"`
	Type      OrderEventType `json:"type"`
	OldStatus OrderStatus    `json:"old_status,omitempty"`
	NewStatus OrderStatus    `json:"new_status,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
