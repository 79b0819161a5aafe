package service

import (
	"context"
	"time"
)

// Order event types
const (
	EventOrderCreated       = "order.created"
	EventOrderCancelled     = "order.cancelled"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEventItem is one line of an order carried in an event.
type OrderEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderEvent is published after an order transaction commits.
type OrderEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	Type        string           `json:"type"`
	OrderID     string           `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	CustomerID  string           `json:"customer_id,omitempty"`
	Status      string           `json:"status"`
	TotalCents  int64            `json:"total_cents"`
	Items       []OrderEventItem `json:"items,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// Attributes returns the message attributes used for filtering and tracing.
func (e *OrderEvent) Attributes() map[string]string {
	attributes := map[string]string{
		"type":         e.Type,
		"order_id":     e.OrderID,
		"order_number": e.OrderNumber,
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
