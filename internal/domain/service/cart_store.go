package service

import (
	"context"

	"jewelshop/internal/domain/entity"
	"jewelshop/internal/errors"
)

// ErrCartConflict is returned when a cart kept changing underneath a write after all retries.
var ErrCartConflict = errors.New("cart modified concurrently")

// CartStore is the TTL'd key-value storage behind shopping carts. Implementations
// refresh the TTL on every write and apply Update atomically per identity.
type CartStore interface {
	// Load returns the stored cart, or an empty cart when none exists.
	Load(ctx context.Context, identity entity.CartIdentity) (*entity.Cart, error)

	// Update applies mutate to the current cart and stores the result. When mutate
	// returns an error nothing is written and the error is returned as is.
	Update(ctx context.Context, identity entity.CartIdentity, mutate func(cart *entity.Cart) error) (*entity.Cart, error)

	// Clear removes the cart.
	Clear(ctx context.Context, identity entity.CartIdentity) error
}
