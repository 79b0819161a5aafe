package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// IsValid checks if the status is a recognised value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the payment side of an order. It is metadata only.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodMpesa        PaymentMethod = "mpesa"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid checks if the payment method is a recognised value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodMpesa, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// Order is a placed order with snapshotted prices. Orders are never deleted.
type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	CustomerID    *uuid.UUID // nil for guest checkout
	Address       *OrderAddress
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	Subtotal      Money
	Shipping      Money
	Tax           Money
	Total         Money
	Notes         string
	InternalNotes string
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ConfirmedAt   *time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
}

// OrderItem is one product line within an order. The price is captured at order time.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Quantity  int
	Price     Money
	Total     Money
	CreatedAt time.Time
}

// Recalculate sets the line total from quantity and snapshot price.
func (i *OrderItem) Recalculate() {
	i.Total = i.Price.Mul(i.Quantity)
}

// MaxLineQuantity caps the units of one product in a cart or an order.
const MaxLineQuantity = 999

// ValidLineQuantity reports whether qty units of one product may be bought together.
func ValidLineQuantity(qty int) bool {
	return qty >= 1 && qty <= MaxLineQuantity
}

// AddItem merges qty of a product into the order at the given price and
// recomputes the totals. An existing line for the product keeps its original price.
func (o *Order) AddItem(productID uuid.UUID, name string, qty int, price Money) *OrderItem {
	for _, item := range o.Items {
		if item.ProductID == productID {
			item.Quantity += qty
			item.Recalculate()
			o.RecalculateTotals()

			return item
		}
	}

	item := &OrderItem{
		ID:        uuid.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Name:      name,
		Quantity:  qty,
		Price:     price,
	}
	item.Recalculate()
	o.Items = append(o.Items, item)
	o.RecalculateTotals()

	return item
}

// RecalculateTotals derives the subtotal from the lines and the total from its parts.
func (o *Order) RecalculateTotals() {
	var subtotal Money
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Total)
	}

	o.Subtotal = subtotal
	o.Total = o.Subtotal.Add(o.Shipping).Add(o.Tax)
}

// CanBeCancelled reports whether the order has not left the warehouse yet.
func (o *Order) CanBeCancelled() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing:
		return true
	default:
		return false
	}
}

// Cancel marks the order cancelled and records the reason in the staff notes.
// Callers must check CanBeCancelled first.
func (o *Order) Cancel(reason string, now time.Time) {
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}

	line := "Cancelled: " + reason
	if o.InternalNotes == "" {
		o.InternalNotes = line
	} else {
		o.InternalNotes += "\n" + line
	}
}

// TransitionTo moves the order to status, stamping the milestone timestamp
// the first time the order reaches it.
func (o *Order) TransitionTo(status OrderStatus, now time.Time) {
	o.Status = status
	o.UpdatedAt = now

	switch status {
	case OrderStatusConfirmed:
		if o.ConfirmedAt == nil {
			o.ConfirmedAt = &now
		}
	case OrderStatusShipped:
		if o.ShippedAt == nil {
			o.ShippedAt = &now
		}
	case OrderStatusDelivered:
		if o.DeliveredAt == nil {
			o.DeliveredAt = &now
		}
	case OrderStatusCancelled:
		if o.CancelledAt == nil {
			o.CancelledAt = &now
		}
	}
}

// TotalItems sums the quantities of all lines.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}
