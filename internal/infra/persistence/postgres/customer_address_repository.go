package postgres

import (
	"context"
	"fmt"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerAddressRepository implements the domain.CustomerAddressRepository interface.
type customerAddressRepository struct {
	db *gorm.DB
}

// NewCustomerAddressRepository is the constructor for customerAddressRepository.
func NewCustomerAddressRepository(db *gorm.DB) repository.CustomerAddressRepository {
	return &customerAddressRepository{db: db}
}

// LockDefaultPartition takes a transaction-scoped advisory lock for the
// (customer, address type) pair. It must run inside a transaction.
func (repo *customerAddressRepository) LockDefaultPartition(ctx context.Context, customerID uuid.UUID, addressType entity.AddressType) error {
	key := fmt.Sprintf("customer_address_default:%s:%s", customerID, addressType)

	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock default address partition")
	}

	return nil
}

// ClearDefaults unsets is_default for the partition except exceptID.
func (repo *customerAddressRepository) ClearDefaults(
	ctx context.Context,
	customerID uuid.UUID,
	addressType entity.AddressType,
	exceptID uuid.UUID,
) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CustomerAddressModel{}).
		Where("customer_id = ? AND address_type = ? AND is_default = ? AND id <> ?", customerID, string(addressType), true, exceptID).
		Updates(map[string]any{
			"is_default": false,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default addresses")
	}

	return nil
}

// Create persists a new address book entry.
func (repo *customerAddressRepository) Create(ctx context.Context, address *entity.CustomerAddress) error {
	addressM := fromCustomerAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return mapCustomerAddressWriteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update replaces an address book entry owned by address.CustomerID.
func (repo *customerAddressRepository) Update(ctx context.Context, address *entity.CustomerAddress) error {
	addressM := fromCustomerAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerAddressModel{}).
		Where("id = ? AND customer_id = ?", address.ID, address.CustomerID).
		Select("*").
		Omit("id", "customer_id", "created_at").
		Updates(addressM)
	if result.Error != nil {
		return mapCustomerAddressWriteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// FindByID retrieves an address owned by the customer.
func (repo *customerAddressRepository) FindByID(ctx context.Context, customerID, id uuid.UUID) (*entity.CustomerAddress, error) {
	var addressM model.CustomerAddressModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toCustomerAddressDomain(&addressM), nil
}

// ListByCustomer retrieves the address book, default entries first.
func (repo *customerAddressRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerAddress, error) {
	var addressModels []*model.CustomerAddressModel

	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.CustomerAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toCustomerAddressDomain(addressM))
	}

	return addresses, nil
}

// Delete removes an address owned by the customer.
func (repo *customerAddressRepository) Delete(ctx context.Context, customerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		Delete(&model.CustomerAddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, the address does not exist or is not owned by the customer.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func mapCustomerAddressWriteError(err error, message string) error {
	if isUniqueConstraintViolation(err) {
		return repository.ErrDefaultAddressConflict
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidAddressType.WithDetails(err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}

// --- Mapper Functions ---

func toCustomerAddressDomain(data *model.CustomerAddressModel) *entity.CustomerAddress {
	if data == nil {
		return nil
	}

	return &entity.CustomerAddress{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		AddressType: entity.AddressType(data.AddressType),
		FullName:    data.FullName,
		Phone:       data.Phone,
		Line1:       data.Line1,
		Line2:       data.Line2,
		City:        data.City,
		County:      data.County,
		PostalCode:  data.PostalCode,
		Country:     data.Country,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCustomerAddressDomain(data *entity.CustomerAddress) *model.CustomerAddressModel {
	if data == nil {
		return nil
	}

	return &model.CustomerAddressModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		AddressType: string(data.AddressType),
		FullName:    data.FullName,
		Phone:       data.Phone,
		Line1:       data.Line1,
		Line2:       data.Line2,
		City:        data.City,
		County:      data.County,
		PostalCode:  data.PostalCode,
		Country:     data.Country,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
