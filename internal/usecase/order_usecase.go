package usecase

import (
	"context"

	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries everything needed to assemble an order.
type CreateOrderInput struct {
	CustomerID     *uuid.UUID
	Address        entity.OrderAddress
	PaymentMethod  entity.PaymentMethod
	Notes          string
	Items          []OrderItemInput
	IdempotencyKey string
}

// CheckoutInput converts the caller's cart into an order.
type CheckoutInput struct {
	Identity       entity.CartIdentity
	CustomerID     *uuid.UUID
	Address        entity.OrderAddress
	PaymentMethod  entity.PaymentMethod
	Notes          string
	IdempotencyKey string
}

// OrderListResult is a page of orders.
type OrderListResult struct {
	Orders []*entity.Order
	Total  int64
}

// OrderUsecase assembles orders from carts or explicit item lists.
type OrderUsecase interface {
	// CreateOrder validates the items, persists the order and decrements stock in one transaction.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// Checkout creates an order from the identity's cart and clears the cart after commit.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
}

// OrderLifecycleUsecase moves orders through their statuses and serves order reads.
type OrderLifecycleUsecase interface {
	// Cancel cancels a customer's own order when it is still cancellable.
	Cancel(ctx context.Context, customerID, orderID uuid.UUID, reason string) (*entity.Order, error)

	// UpdateStatus sets any recognised status on an order.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// GetCustomerOrder returns an order owned by the customer.
	GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// ListCustomerOrders returns the customer's orders newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, page Page) (*OrderListResult, error)

	// ListOrders returns all orders, optionally filtered by status.
	ListOrders(ctx context.Context, status entity.OrderStatus, page Page) (*OrderListResult, error)
}
