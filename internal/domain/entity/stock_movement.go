package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockMovementReason explains why a product's stock changed.
type StockMovementReason string

const (
	StockMovementOrder StockMovementReason = "order"
)

// StockMovement is an append-only ledger row recording a change in stock.
type StockMovement struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	OrderID   *uuid.UUID
	Change    int // negative for decrements
	Reason    StockMovementReason
	CreatedAt time.Time
}
