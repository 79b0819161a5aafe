package impl

import (
	"context"
	"testing"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"
	mockRepo "jewelshop/internal/mocks/repository"
	mockSvc "jewelshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixture struct {
	service     *cartService
	cartStore   *mockSvc.MockCartStore
	productRepo *mockRepo.MockProductRepository
	metrics     *recordingMetrics
}

func createTestCartService(t *testing.T) cartServiceFixture {
	t.Helper()

	fixture := cartServiceFixture{
		cartStore:   mockSvc.NewMockCartStore(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		metrics:     newRecordingMetrics(),
	}

	fixture.service = NewCartService(CartServiceParams{
		CartStore:   fixture.cartStore,
		ProductRepo: fixture.productRepo,
		Metrics:     fixture.metrics,
		Logger:      newDiscardLogger(),
	}).(*cartService)

	return fixture
}

// expectUpdateOn runs the mutation against stored, mirroring a store that writes only on success.
func expectUpdateOn(store *mockSvc.MockCartStore, identity entity.CartIdentity, stored *entity.Cart) *mockSvc.MockCartStore_Update_Call {
	return store.EXPECT().
		Update(mock.Anything, identity, mock.AnythingOfType("func(*entity.Cart) error")).
		RunAndReturn(func(_ context.Context, _ entity.CartIdentity, mutate func(*entity.Cart) error) (*entity.Cart, error) {
			working := entity.NewCart()
			for id, qty := range stored.Items {
				working.Items[id] = qty
			}
			if err := mutate(working); err != nil {
				return nil, err
			}
			stored.Items = working.Items

			return working, nil
		})
}

func TestCartService_AddItem_NewProduct(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")
	ring := newTestProduct("Ring", 250000, 10)
	stored := entity.NewCart()

	fixture.productRepo.EXPECT().FindByID(ctx, ring.ID).Return(ring, nil)
	expectUpdateOn(fixture.cartStore, identity, stored)
	fixture.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{ring.ID}).
		Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)

	view, err := fixture.service.AddItem(ctx, identity, ring.ID, 2)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, entity.Money(500000), view.Total)
	assert.Equal(t, 2, stored.Items[ring.ID])
	assert.Equal(t, []string{"add"}, fixture.metrics.cartOps)
}

func TestCartService_AddItem_AccumulatesAndChecksNewQuantity(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")
	ring := newTestProduct("Ring", 250000, 3)
	stored := &entity.Cart{Items: map[uuid.UUID]int{ring.ID: 2}}

	fixture.productRepo.EXPECT().FindByID(ctx, ring.ID).Return(ring, nil)
	expectUpdateOn(fixture.cartStore, identity, stored)

	_, err := fixture.service.AddItem(ctx, identity, ring.ID, 2)
	require.Error(t, err)

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Equal(t, "Insufficient stock for Ring. Available: 3", err.Error())
	assert.Equal(t, 2, stored.Items[ring.ID], "a rejected add must not change the cart")
	assert.Empty(t, fixture.metrics.cartOps)
}

func TestCartService_AddItem_UntrackedProductIgnoresStock(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")
	engraving := newTestProduct("Engraving", 1000, 0)
	engraving.TrackInventory = false
	stored := entity.NewCart()

	fixture.productRepo.EXPECT().FindByID(ctx, engraving.ID).Return(engraving, nil)
	expectUpdateOn(fixture.cartStore, identity, stored)
	fixture.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{engraving.ID}).
		Return(map[uuid.UUID]*entity.Product{engraving.ID: engraving}, nil)

	view, err := fixture.service.AddItem(ctx, identity, engraving.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, view.TotalItems)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")

	t.Run("zero quantity", func(t *testing.T) {
		fixture := createTestCartService(t)

		_, err := fixture.service.AddItem(ctx, identity, uuid.New(), 0)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	})

	t.Run("delta above the line limit", func(t *testing.T) {
		fixture := createTestCartService(t)

		_, err := fixture.service.AddItem(ctx, identity, uuid.New(), entity.MaxLineQuantity+1)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	})

	t.Run("accumulated quantity above the line limit", func(t *testing.T) {
		fixture := createTestCartService(t)
		engraving := newTestProduct("Engraving", 150000, 0)
		engraving.TrackInventory = false
		stored := &entity.Cart{Items: map[uuid.UUID]int{engraving.ID: entity.MaxLineQuantity}}

		fixture.productRepo.EXPECT().FindByID(ctx, engraving.ID).Return(engraving, nil)
		expectUpdateOn(fixture.cartStore, identity, stored)

		_, err := fixture.service.AddItem(ctx, identity, engraving.ID, 1)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
		assert.Equal(t, entity.MaxLineQuantity, stored.Items[engraving.ID], "rejected mutation is not stored")
	})

	t.Run("unknown product", func(t *testing.T) {
		fixture := createTestCartService(t)
		productID := uuid.New()
		fixture.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fixture.service.AddItem(ctx, identity, productID, 1)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("inactive product", func(t *testing.T) {
		fixture := createTestCartService(t)
		necklace := newTestProduct("Necklace", 900000, 4)
		necklace.IsActive = false
		fixture.productRepo.EXPECT().FindByID(ctx, necklace.ID).Return(necklace, nil)

		_, err := fixture.service.AddItem(ctx, identity, necklace.ID, 1)
		assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
		assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	identity := entity.UserIdentity(userID)
	bangle := newTestProduct("Bangle", 120000, 5)
	stored := &entity.Cart{Items: map[uuid.UUID]int{bangle.ID: 1}}

	fixture.productRepo.EXPECT().FindByID(ctx, bangle.ID).Return(bangle, nil)
	expectUpdateOn(fixture.cartStore, identity, stored)
	fixture.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{bangle.ID}).
		Return(map[uuid.UUID]*entity.Product{bangle.ID: bangle}, nil)

	view, err := fixture.service.SetQuantity(ctx, identity, bangle.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, stored.Items[bangle.ID])
	assert.Equal(t, entity.Money(600000), view.Total)
}

func TestCartService_SetQuantity_AboveLineLimit(t *testing.T) {
	fixture := createTestCartService(t)

	_, err := fixture.service.SetQuantity(context.Background(), entity.SessionIdentity("s"), uuid.New(), entity.MaxLineQuantity+1)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_SetQuantity_ExceedsStock(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	bangle := newTestProduct("Bangle", 120000, 5)

	fixture.productRepo.EXPECT().FindByID(ctx, bangle.ID).Return(bangle, nil)

	_, err := fixture.service.SetQuantity(ctx, entity.SessionIdentity("s"), bangle.ID, 6)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")

	expectUpdateOn(fixture.cartStore, identity, entity.NewCart())

	_, err := fixture.service.RemoveItem(ctx, identity, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestCartService_RemoveItem(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")
	productID := uuid.New()
	stored := &entity.Cart{Items: map[uuid.UUID]int{productID: 3}}

	expectUpdateOn(fixture.cartStore, identity, stored)

	view, err := fixture.service.RemoveItem(ctx, identity, productID)
	require.NoError(t, err)

	assert.Empty(t, view.Lines)
	assert.Empty(t, stored.Items)
	assert.Equal(t, []string{"remove"}, fixture.metrics.cartOps)
}

func TestCartService_GetCart_PrunesStaleEntries(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")

	earring := newTestProduct("Earring", 80000, 10)
	retired := newTestProduct("Retired", 50000, 10)
	retired.IsActive = false
	deletedID := uuid.New()

	stored := &entity.Cart{Items: map[uuid.UUID]int{earring.ID: 2, retired.ID: 1, deletedID: 4}}

	fixture.cartStore.EXPECT().Load(ctx, identity).Return(&entity.Cart{Items: map[uuid.UUID]int{
		earring.ID: 2, retired.ID: 1, deletedID: 4,
	}}, nil)
	fixture.productRepo.EXPECT().
		FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.Product{earring.ID: earring, retired.ID: retired}, nil)
	expectUpdateOn(fixture.cartStore, identity, stored)

	view, err := fixture.service.GetCart(ctx, identity)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, earring.ID, view.Lines[0].Product.ID)
	assert.Equal(t, entity.Money(160000), view.Total)
	assert.Equal(t, map[uuid.UUID]int{earring.ID: 2}, stored.Items)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("fresh")

	fixture.cartStore.EXPECT().Load(ctx, identity).Return(entity.NewCart(), nil)

	view, err := fixture.service.GetCart(ctx, identity)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}

func TestCartService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-1")

	t.Run("conflict after retries", func(t *testing.T) {
		fixture := createTestCartService(t)
		fixture.cartStore.EXPECT().
			Update(ctx, identity, mock.Anything).
			Return(nil, service.ErrCartConflict)

		_, err := fixture.service.RemoveItem(ctx, identity, uuid.New())
		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	})

	t.Run("backend failure", func(t *testing.T) {
		fixture := createTestCartService(t)
		fixture.cartStore.EXPECT().Clear(ctx, identity).Return(errors.New("connection refused"))

		err := fixture.service.Clear(ctx, identity)
		assert.True(t, errors.Is(err, domainerrors.ErrCartStoreFailed))
	})
}
