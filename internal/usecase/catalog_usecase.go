package usecase

import (
	"context"

	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductListResult is a page of products.
type ProductListResult struct {
	Products []*entity.Product
	Total    int64
}

// CatalogUsecase serves read-only catalog queries.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter, page Page) (*ProductListResult, error)

	// GetProduct returns an active product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// StockHistory returns the most recent ledger rows of a product.
	StockHistory(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.StockMovement, error)
}
