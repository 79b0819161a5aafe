package usecase

import (
	"context"

	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the identity-keyed shopping cart.
type CartUsecase interface {
	// GetCart returns the priced cart, pruning entries whose product is gone or inactive.
	GetCart(ctx context.Context, identity entity.CartIdentity) (*entity.CartView, error)

	// AddItem adds delta units of a product, re-validating stock against the new quantity.
	AddItem(ctx context.Context, identity entity.CartIdentity, productID uuid.UUID, delta int) (*entity.CartView, error)

	// SetQuantity sets the absolute quantity of a product.
	SetQuantity(ctx context.Context, identity entity.CartIdentity, productID uuid.UUID, qty int) (*entity.CartView, error)

	// RemoveItem removes a product. Returns ErrCartItemNotFound when it is not in the cart.
	RemoveItem(ctx context.Context, identity entity.CartIdentity, productID uuid.UUID) (*entity.CartView, error)

	// Clear empties the cart.
	Clear(ctx context.Context, identity entity.CartIdentity) error
}
