package usecase

import (
	"context"

	"jewelshop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase manages the customer address book.
type AddressUsecase interface {
	// Create adds an address. When it is the default, other defaults of the same type are cleared.
	Create(ctx context.Context, address *entity.CustomerAddress) (*entity.CustomerAddress, error)

	// Update replaces an owned address, applying the same default rule as Create.
	Update(ctx context.Context, address *entity.CustomerAddress) (*entity.CustomerAddress, error)

	Get(ctx context.Context, customerID, addressID uuid.UUID) (*entity.CustomerAddress, error)

	List(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerAddress, error)

	Delete(ctx context.Context, customerID, addressID uuid.UUID) error
}
