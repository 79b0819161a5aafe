package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "jewelshop/internal/delivery/context"
	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/errors"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// AddressServiceParams holds dependencies for the address book service, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.CustomerAddressRepository
	Logger      *slog.Logger
}

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.CustomerAddressRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewAddressService creates the address book use case.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create saves a new address. A default address clears the other defaults of
// the same customer and type in the same transaction.
func (srv *addressService) Create(ctx context.Context, address *entity.CustomerAddress) (*entity.CustomerAddress, error) {
	address.ApplyDefaults()
	if !address.AddressType.IsValid() {
		return nil, domainerrors.ErrInvalidAddressType
	}

	now := srv.now()
	address.ID = uuid.New()
	address.CreatedAt = now
	address.UpdatedAt = now

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.CustomerAddressRepo()

		if err := srv.clearOtherDefaults(ctx, addressRepo, address); err != nil {
			return err
		}

		return addressRepo.Create(ctx, address)
	})
	if err != nil {
		return nil, srv.mapError(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created",
		slog.String("address_id", address.ID.String()),
		slog.String("type", string(address.AddressType)),
		slog.Bool("is_default", address.IsDefault),
	)

	return address, nil
}

// Update replaces an existing address owned by the customer.
func (srv *addressService) Update(ctx context.Context, address *entity.CustomerAddress) (*entity.CustomerAddress, error) {
	address.ApplyDefaults()
	if !address.AddressType.IsValid() {
		return nil, domainerrors.ErrInvalidAddressType
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.CustomerAddressRepo()

		existing, err := addressRepo.FindByID(ctx, address.CustomerID, address.ID)
		if err != nil {
			return err
		}

		address.CreatedAt = existing.CreatedAt
		address.UpdatedAt = srv.now()

		if err := srv.clearOtherDefaults(ctx, addressRepo, address); err != nil {
			return err
		}

		return addressRepo.Update(ctx, address)
	})
	if err != nil {
		return nil, srv.mapError(err, "failed to update address")
	}

	return address, nil
}

func (srv *addressService) Get(ctx context.Context, customerID, addressID uuid.UUID) (*entity.CustomerAddress, error) {
	address, err := srv.addressRepo.FindByID(ctx, customerID, addressID)
	if err != nil {
		return nil, srv.mapError(err, "failed to find address")
	}

	return address, nil
}

func (srv *addressService) List(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerAddress, error) {
	addresses, err := srv.addressRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

func (srv *addressService) Delete(ctx context.Context, customerID, addressID uuid.UUID) error {
	if err := srv.addressRepo.Delete(ctx, customerID, addressID); err != nil {
		return srv.mapError(err, "failed to delete address")
	}

	return nil
}

// clearOtherDefaults takes the partition lock before touching defaults so that
// concurrent default saves for the same customer and type run one after another.
func (srv *addressService) clearOtherDefaults(
	ctx context.Context,
	addressRepo repository.CustomerAddressRepository,
	address *entity.CustomerAddress,
) error {
	if !address.IsDefault {
		return nil
	}

	if err := addressRepo.LockDefaultPartition(ctx, address.CustomerID, address.AddressType); err != nil {
		return errors.Wrap(err, "failed to lock default addresses")
	}

	if err := addressRepo.ClearDefaults(ctx, address.CustomerID, address.AddressType, address.ID); err != nil {
		return errors.Wrap(err, "failed to clear default addresses")
	}

	return nil
}

func (srv *addressService) mapError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrAddressNotFound):
		return domainerrors.ErrAddressNotFound
	case errors.Is(err, repository.ErrDefaultAddressConflict):
		return domainerrors.ErrDefaultAddressConflict
	default:
		return errors.Wrap(err, message)
	}
}
