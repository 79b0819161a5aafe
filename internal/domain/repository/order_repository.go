package repository

import (
	"context"

	"jewelshop/internal/domain/entity"
	"jewelshop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNumberTaken is returned when the unique order number is already used.
	ErrOrderNumberTaken = errors.New("order number already exists")
)

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	CustomerID *uuid.UUID
	Status     entity.OrderStatus
	Offset     int
	Limit      int
}

// OrderRepository persists orders, their lines and address snapshots.
type OrderRepository interface {
	// CreateAddress persists a new order address snapshot.
	CreateAddress(ctx context.Context, address *entity.OrderAddress) error

	// Create persists the order header. Returns ErrOrderNumberTaken on a number collision.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItems persists the order lines.
	CreateItems(ctx context.Context, items []*entity.OrderItem) error

	// UpdateTotals writes the derived money columns of the order.
	UpdateTotals(ctx context.Context, order *entity.Order) error

	// FindByID loads an order with its lines and address.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads an order and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus writes status, notes and milestone timestamps.
	UpdateStatus(ctx context.Context, order *entity.Order) error

	// List returns orders newest first and the total match count.
	List(ctx context.Context, filter OrderListFilter) ([]*entity.Order, int64, error)
}
