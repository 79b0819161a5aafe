package repository

import (
	"context"

	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
)

// StockMovementRepository appends to and reads the stock ledger.
type StockMovementRepository interface {
	Record(ctx context.Context, movement *entity.StockMovement) error

	ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.StockMovement, error)
}
