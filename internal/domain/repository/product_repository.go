// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"jewelshop/internal/domain/entity"
	"jewelshop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository is the product stock ledger.
type ProductRepository interface {
	// FindByID returns a product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// ListActive returns active products matching the filter and the total match count.
	ListActive(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	// DecrementStock atomically subtracts qty when at least qty units remain.
	// It returns ErrInsufficientStock when the condition no longer holds.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
