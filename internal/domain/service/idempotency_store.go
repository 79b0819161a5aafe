package service

import (
	"context"

	"jewelshop/internal/errors"

	"github.com/google/uuid"
)

// ErrIdempotencyKeyInProgress is returned when another request holds the key and has not finished.
var ErrIdempotencyKeyInProgress = errors.New("idempotency key in progress")

// IdempotencyStore remembers which order a client-supplied Idempotency-Key produced.
type IdempotencyStore interface {
	// Reserve claims key before an order is assembled. It returns reserved=true when the
	// caller now owns the key, or the id of the order an earlier request produced.
	Reserve(ctx context.Context, scope, key string) (orderID uuid.UUID, reserved bool, err error)

	// Complete stores the order id for a reserved key.
	Complete(ctx context.Context, scope, key string, orderID uuid.UUID) error

	// Release drops a reservation that did not produce an order.
	Release(ctx context.Context, scope, key string) error
}
