package repository

import (
	"context"

	"jewelshop/internal/domain/entity"
	"jewelshop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when the one-default-per-type index rejects a write.
	ErrDefaultAddressConflict = errors.New("customer already has a default address of this type")
)

// CustomerAddressRepository persists the customer address book.
type CustomerAddressRepository interface {
	// LockDefaultPartition serialises default changes for one (customer, type) pair
	// until the surrounding transaction ends.
	LockDefaultPartition(ctx context.Context, customerID uuid.UUID, addressType entity.AddressType) error

	// ClearDefaults unsets is_default on the partition, except for the given address id.
	ClearDefaults(ctx context.Context, customerID uuid.UUID, addressType entity.AddressType, exceptID uuid.UUID) error

	Create(ctx context.Context, address *entity.CustomerAddress) error

	Update(ctx context.Context, address *entity.CustomerAddress) error

	// FindByID returns an address only when it belongs to the customer.
	FindByID(ctx context.Context, customerID, id uuid.UUID) (*entity.CustomerAddress, error)

	// ListByCustomer returns addresses with defaults first, then newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerAddress, error)

	Delete(ctx context.Context, customerID, id uuid.UUID) error
}
