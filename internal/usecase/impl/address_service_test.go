package impl

import (
	"context"
	"testing"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/errors"
	mockRepo "jewelshop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressFixture struct {
	service     *addressService
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockCustomerAddressRepository
	txAddresses *mockRepo.MockCustomerAddressRepository
}

func createTestAddressService(t *testing.T) *addressFixture {
	t.Helper()

	fixture := &addressFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		addressRepo: mockRepo.NewMockCustomerAddressRepository(t),
		txAddresses: mockRepo.NewMockCustomerAddressRepository(t),
	}

	fixture.service = NewAddressService(AddressServiceParams{
		TxManager:   fixture.txManager,
		AddressRepo: fixture.addressRepo,
		Logger:      newDiscardLogger(),
	}).(*addressService)
	fixture.service.now = fixedClock

	fixture.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().CustomerAddressRepo().Return(fixture.txAddresses)

			return fn(factory)
		}).Maybe()

	return fixture
}

func TestAddressService_Create_DefaultClearsPartition(t *testing.T) {
	fixture := createTestAddressService(t)
	ctx := context.Background()
	customerID := uuid.New()

	address := &entity.CustomerAddress{
		CustomerID: customerID,
		FullName:   "Amina W.",
		Line1:      "Kimathi St",
		City:       "Nairobi",
		IsDefault:  true,
	}

	var lockTaken bool
	fixture.txAddresses.EXPECT().
		LockDefaultPartition(ctx, customerID, entity.AddressTypeShipping).
		Run(func(context.Context, uuid.UUID, entity.AddressType) { lockTaken = true }).
		Return(nil)
	fixture.txAddresses.EXPECT().
		ClearDefaults(ctx, customerID, entity.AddressTypeShipping, mock.AnythingOfType("uuid.UUID")).
		Run(func(_ context.Context, _ uuid.UUID, _ entity.AddressType, exceptID uuid.UUID) {
			assert.True(t, lockTaken, "defaults must be cleared under the partition lock")
			assert.Equal(t, address.ID, exceptID)
		}).
		Return(nil)
	fixture.txAddresses.EXPECT().Create(ctx, address).Return(nil)

	created, err := fixture.service.Create(ctx, address)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, entity.AddressTypeShipping, created.AddressType)
	assert.Equal(t, entity.DefaultCounty, created.County)
	assert.Equal(t, entity.DefaultCountry, created.Country)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestAddressService_Create_NonDefaultSkipsLock(t *testing.T) {
	fixture := createTestAddressService(t)
	ctx := context.Background()
	address := &entity.CustomerAddress{CustomerID: uuid.New(), AddressType: entity.AddressTypeBilling}

	fixture.txAddresses.EXPECT().Create(ctx, address).Return(nil)

	_, err := fixture.service.Create(ctx, address)
	require.NoError(t, err)
}

func TestAddressService_Create_InvalidType(t *testing.T) {
	fixture := createTestAddressService(t)

	_, err := fixture.service.Create(context.Background(), &entity.CustomerAddress{AddressType: "office"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAddressType))
}

func TestAddressService_Create_UniqueIndexConflict(t *testing.T) {
	fixture := createTestAddressService(t)
	ctx := context.Background()
	address := &entity.CustomerAddress{CustomerID: uuid.New(), IsDefault: true}

	fixture.txAddresses.EXPECT().LockDefaultPartition(ctx, address.CustomerID, entity.AddressTypeShipping).Return(nil)
	fixture.txAddresses.EXPECT().ClearDefaults(ctx, address.CustomerID, entity.AddressTypeShipping, mock.Anything).Return(nil)
	fixture.txAddresses.EXPECT().Create(ctx, address).Return(repository.ErrDefaultAddressConflict)

	_, err := fixture.service.Create(ctx, address)
	assert.True(t, errors.Is(err, domainerrors.ErrDefaultAddressConflict))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestAddressService_Update(t *testing.T) {
	fixture := createTestAddressService(t)
	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	createdAt := fixedNow.AddDate(-1, 0, 0)

	fixture.txAddresses.EXPECT().FindByID(ctx, customerID, addressID).
		Return(&entity.CustomerAddress{ID: addressID, CustomerID: customerID, CreatedAt: createdAt}, nil)
	fixture.txAddresses.EXPECT().LockDefaultPartition(ctx, customerID, entity.AddressTypeBoth).Return(nil)
	fixture.txAddresses.EXPECT().ClearDefaults(ctx, customerID, entity.AddressTypeBoth, addressID).Return(nil)
	fixture.txAddresses.EXPECT().Update(ctx, mock.AnythingOfType("*entity.CustomerAddress")).Return(nil)

	updated, err := fixture.service.Update(ctx, &entity.CustomerAddress{
		ID:          addressID,
		CustomerID:  customerID,
		AddressType: entity.AddressTypeBoth,
		City:        "Mombasa",
		County:      "Mombasa",
		IsDefault:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
	assert.Equal(t, "Mombasa", updated.County)
}

func TestAddressService_Update_NotOwned(t *testing.T) {
	fixture := createTestAddressService(t)
	ctx := context.Background()
	address := &entity.CustomerAddress{ID: uuid.New(), CustomerID: uuid.New()}

	fixture.txAddresses.EXPECT().FindByID(ctx, address.CustomerID, address.ID).Return(nil, repository.ErrAddressNotFound)

	_, err := fixture.service.Update(ctx, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_ReadsAndDelete(t *testing.T) {
	fixture := createTestAddressService(t)
	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	fixture.addressRepo.EXPECT().ListByCustomer(ctx, customerID).
		Return([]*entity.CustomerAddress{{ID: addressID, IsDefault: true}}, nil)
	fixture.addressRepo.EXPECT().FindByID(ctx, customerID, addressID).Return(nil, repository.ErrAddressNotFound)
	fixture.addressRepo.EXPECT().Delete(ctx, customerID, addressID).Return(nil)

	addresses, err := fixture.service.List(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)

	_, err = fixture.service.Get(ctx, customerID, addressID)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))

	require.NoError(t, fixture.service.Delete(ctx, customerID, addressID))
}
