package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"
	mockRepo "jewelshop/internal/mocks/repository"
	mockSvc "jewelshop/internal/mocks/service"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service      *orderService
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	orderRepo    *mockRepo.MockOrderRepository
	cartStore    *mockSvc.MockCartStore
	publisher    *mockSvc.MockEventPublisher
	idempotency  *mockSvc.MockIdempotencyStore
	metrics      *recordingMetrics
	orderNumbers []string
}

func createTestOrderService(t *testing.T) *orderServiceFixture {
	t.Helper()

	fixture := &orderServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		cartStore:   mockSvc.NewMockCartStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		idempotency: mockSvc.NewMockIdempotencyStore(t),
		metrics:     newRecordingMetrics(),
	}

	fixture.service = NewOrderService(OrderServiceParams{
		TxManager:   fixture.txManager,
		ProductRepo: fixture.productRepo,
		OrderRepo:   fixture.orderRepo,
		CartStore:   fixture.cartStore,
		Publisher:   fixture.publisher,
		Idempotency: fixture.idempotency,
		Metrics:     fixture.metrics,
		Config:      newTestConfig(50000, 1600),
		Logger:      newDiscardLogger(),
	}).(*orderService)
	fixture.service.now = fixedClock
	fixture.service.newOrderNumber = func(time.Time) string {
		if len(fixture.orderNumbers) == 0 {
			return "ORD-20250314-ABCDEF"
		}
		next := fixture.orderNumbers[0]
		fixture.orderNumbers = fixture.orderNumbers[1:]

		return next
	}

	return fixture
}

// txRepos are the repositories handed to a single transaction.
type txRepos struct {
	factory  *mockRepo.MockRepositoryFactory
	products *mockRepo.MockProductRepository
	orders   *mockRepo.MockOrderRepository
	ledger   *mockRepo.MockStockMovementRepository
}

// expectTransaction runs fn against fresh transaction-scoped mocks configured by setup.
func (f *orderServiceFixture) expectTransaction(t *testing.T, setup func(repos txRepos)) *mockRepo.MockTransactionManager_Execute_Call {
	call := f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			repos := txRepos{
				factory:  mockRepo.NewMockRepositoryFactory(t),
				products: mockRepo.NewMockProductRepository(t),
				orders:   mockRepo.NewMockOrderRepository(t),
				ledger:   mockRepo.NewMockStockMovementRepository(t),
			}
			repos.factory.EXPECT().ProductRepo().Return(repos.products).Maybe()
			repos.factory.EXPECT().OrderRepo().Return(repos.orders).Maybe()
			repos.factory.EXPECT().StockMovementRepo().Return(repos.ledger).Maybe()
			setup(repos)

			return fn(repos.factory)
		})
	call.Once()

	return call
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()

	ring := newTestProduct("Gold Ring", 1000000, 3)
	engraving := newTestProduct("Engraving", 150000, 0)
	engraving.TrackInventory = false

	fixture.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{ring.ID, engraving.ID}).
		Return(map[uuid.UUID]*entity.Product{ring.ID: ring, engraving.ID: engraving}, nil)

	var persisted []*entity.OrderItem
	var movements []*entity.StockMovement
	fixture.expectTransaction(t, func(repos txRepos) {
		repos.orders.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.OrderAddress")).
			Run(func(_ context.Context, address *entity.OrderAddress) {
				assert.Equal(t, entity.DefaultCounty, address.County)
				assert.Equal(t, entity.DefaultCountry, address.Country)
			}).Return(nil)
		repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		repos.products.EXPECT().DecrementStock(ctx, ring.ID, 2).Return(nil)
		repos.ledger.EXPECT().Record(ctx, mock.AnythingOfType("*entity.StockMovement")).
			Run(func(_ context.Context, movement *entity.StockMovement) {
				movements = append(movements, movement)
			}).Return(nil)
		repos.orders.EXPECT().CreateItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
			Run(func(_ context.Context, items []*entity.OrderItem) {
				persisted = items
			}).Return(nil)
		repos.orders.EXPECT().UpdateTotals(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	})

	fixture.idempotency.EXPECT().
		Reserve(ctx, "customer:"+customerID.String(), "key-1").
		Return(uuid.Nil, true, nil)
	fixture.idempotency.EXPECT().
		Complete(ctx, "customer:"+customerID.String(), "key-1", mock.AnythingOfType("uuid.UUID")).
		Return(nil)
	fixture.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.EventOrderCreated, event.Type)
			assert.Equal(t, customerID.String(), event.CustomerID)
			assert.Len(t, event.Items, 2)
		}).
		Return(nil)

	order, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID: &customerID,
		Address:    entity.OrderAddress{FullName: "Amina W.", Phone: "+254700000000", Line1: "Moi Ave", City: "Nairobi"},
		Items: []usecase.OrderItemInput{
			{ProductID: ring.ID, Quantity: 1},
			{ProductID: engraving.ID, Quantity: 1},
			{ProductID: ring.ID, Quantity: 1},
		},
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-20250314-ABCDEF", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, &customerID, order.CustomerID)

	require.Len(t, persisted, 2, "duplicate product lines are merged")
	assert.Equal(t, 2, persisted[0].Quantity)
	assert.Equal(t, entity.Money(2000000), persisted[0].Total)
	assert.Equal(t, order.ID, persisted[0].OrderID)

	assert.Equal(t, entity.Money(2150000), order.Subtotal)
	assert.Equal(t, entity.Money(50000), order.Shipping)
	assert.Equal(t, entity.Money(344000), order.Tax)
	assert.Equal(t, order.Subtotal+order.Shipping+order.Tax, order.Total)

	require.Len(t, movements, 1, "untracked products are not written to the ledger")
	assert.Equal(t, -2, movements[0].Change)
	assert.Equal(t, ring.ID, movements[0].ProductID)
	assert.Equal(t, order.ID, *movements[0].OrderID)

	assert.Equal(t, 1, fixture.metrics.created)
}

func TestOrderService_CreateOrder_ValidationFailures(t *testing.T) {
	ctx := context.Background()

	ring := newTestProduct("Gold Ring", 1000000, 1)
	hidden := newTestProduct("Hidden", 1000, 10)
	hidden.IsActive = false
	engraving := newTestProduct("Engraving", 1000000, 0)
	engraving.TrackInventory = false

	tests := []struct {
		name    string
		items   []usecase.OrderItemInput
		method  entity.PaymentMethod
		catalog map[uuid.UUID]*entity.Product
		wantErr error
		wantMsg string
	}{
		{
			name:    "no items",
			wantErr: domainerrors.ErrEmptyOrder,
		},
		{
			name:    "zero quantity",
			items:   []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 0}},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "quantity large enough to overflow the line total",
			items:   []usecase.OrderItemInput{{ProductID: engraving.ID, Quantity: math.MaxInt64/1000000 + 1}},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name: "merged quantity above the line limit",
			items: []usecase.OrderItemInput{
				{ProductID: engraving.ID, Quantity: 600},
				{ProductID: engraving.ID, Quantity: 600},
			},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "unknown payment method",
			items:   []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
			method:  "cheque",
			wantErr: domainerrors.ErrInvalidPaymentMethod,
		},
		{
			name:    "inactive product",
			items:   []usecase.OrderItemInput{{ProductID: hidden.ID, Quantity: 1}},
			catalog: map[uuid.UUID]*entity.Product{hidden.ID: hidden},
			wantErr: domainerrors.ErrProductUnavailable,
			wantMsg: "Product Hidden is not available",
		},
		{
			name:    "merged quantity exceeds stock",
			items:   []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}, {ProductID: ring.ID, Quantity: 1}},
			catalog: map[uuid.UUID]*entity.Product{ring.ID: ring},
			wantErr: domainerrors.ErrInsufficientStock,
			wantMsg: "Insufficient stock for Gold Ring. Available: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := createTestOrderService(t)
			if tt.catalog != nil {
				fixture.productRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).Return(tt.catalog, nil)
			}

			_, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
				Items:         tt.items,
				PaymentMethod: tt.method,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestOrderService_CreateOrder_StockTakenConcurrently(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	ring := newTestProduct("Gold Ring", 1000000, 1)

	fixture.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{ring.ID}).
		Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)

	fixture.expectTransaction(t, func(repos txRepos) {
		repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
		repos.products.EXPECT().DecrementStock(ctx, ring.ID, 1).Return(repository.ErrInsufficientStock)
	})

	_, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStockExhausted))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	assert.Equal(t, []string{string(domainerrors.KindConflict)}, fixture.metrics.rejected)
	assert.Zero(t, fixture.metrics.created)
}

func TestOrderService_CreateOrder_RetriesOrderNumberOnce(t *testing.T) {
	ctx := context.Background()
	ring := newTestProduct("Gold Ring", 1000000, 5)

	t.Run("second number succeeds", func(t *testing.T) {
		fixture := createTestOrderService(t)
		fixture.orderNumbers = []string{"ORD-20250314-000001", "ORD-20250314-000002"}

		fixture.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).
			Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)

		fixture.expectTransaction(t, func(repos txRepos) {
			repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrOrderNumberTaken)
		})
		fixture.expectTransaction(t, func(repos txRepos) {
			repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
			repos.products.EXPECT().DecrementStock(ctx, ring.ID, 1).Return(nil)
			repos.ledger.EXPECT().Record(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().CreateItems(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().UpdateTotals(ctx, mock.Anything).Return(nil)
		})
		fixture.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

		order, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, "ORD-20250314-000002", order.OrderNumber)
	})

	t.Run("two collisions fail with conflict", func(t *testing.T) {
		fixture := createTestOrderService(t)

		fixture.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).
			Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)

		for range orderNumberAttempts {
			fixture.expectTransaction(t, func(repos txRepos) {
				repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
				repos.orders.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrOrderNumberTaken)
			})
		}

		_, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNumberCollision))
		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	})
}

func TestOrderService_CreateOrder_DecrementsStockInProductIDOrder(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()

	first := newTestProduct("Pearl Studs", 300000, 5)
	first.ID = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	second := newTestProduct("Silver Chain", 450000, 5)
	second.ID = uuid.MustParse("ffffffff-0000-4000-8000-000000000001")

	fixture.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{second.ID, first.ID}).
		Return(map[uuid.UUID]*entity.Product{first.ID: first, second.ID: second}, nil)

	var decremented []uuid.UUID
	var persisted []*entity.OrderItem
	fixture.expectTransaction(t, func(repos txRepos) {
		repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
		repos.products.EXPECT().DecrementStock(ctx, mock.AnythingOfType("uuid.UUID"), 1).
			Run(func(_ context.Context, id uuid.UUID, _ int) {
				decremented = append(decremented, id)
			}).Return(nil).Times(2)
		repos.ledger.EXPECT().Record(ctx, mock.Anything).Return(nil).Times(2)
		repos.orders.EXPECT().CreateItems(ctx, mock.Anything).
			Run(func(_ context.Context, items []*entity.OrderItem) {
				persisted = items
			}).Return(nil)
		repos.orders.EXPECT().UpdateTotals(ctx, mock.Anything).Return(nil)
	})
	fixture.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	_, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: second.ID, Quantity: 1},
			{ProductID: first.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, decremented)
	require.Len(t, persisted, 2)
	assert.Equal(t, second.ID, persisted[0].ProductID, "order lines keep the requested order")
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	ring := newTestProduct("Gold Ring", 1000000, 5)

	fixture.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)
	fixture.expectTransaction(t, func(repos txRepos) {
		repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
		repos.products.EXPECT().DecrementStock(ctx, ring.ID, 1).Return(nil)
		repos.ledger.EXPECT().Record(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().CreateItems(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().UpdateTotals(ctx, mock.Anything).Return(nil)
	})
	fixture.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestOrderService_CreateOrder_IdempotentReplay(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	existing := &entity.Order{ID: uuid.New(), OrderNumber: "ORD-20250313-111111"}

	fixture.idempotency.EXPECT().Reserve(ctx, "customer:"+customerID.String(), "retry-key").Return(existing.ID, false, nil)
	fixture.orderRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	order, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:     &customerID,
		Items:          []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		IdempotencyKey: "retry-key",
	})
	require.NoError(t, err)
	assert.Same(t, existing, order)
	assert.Zero(t, fixture.metrics.created)
}

func TestOrderService_CreateOrder_IdempotencyKeyInFlight(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fixture.idempotency.EXPECT().
		Reserve(ctx, "customer:"+customerID.String(), "double-submit").
		Return(uuid.Nil, false, service.ErrIdempotencyKeyInProgress)

	_, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:     &customerID,
		Items:          []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		IdempotencyKey: "double-submit",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIdempotencyKeyInUse))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestOrderService_CreateOrder_FailureReleasesIdempotencyKey(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	ring := newTestProduct("Gold Ring", 1000000, 1)
	scope := "customer:" + customerID.String()

	fixture.idempotency.EXPECT().Reserve(ctx, scope, "key-7").Return(uuid.Nil, true, nil)
	fixture.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ring.ID}).
		Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)
	fixture.expectTransaction(t, func(repos txRepos) {
		repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
		repos.products.EXPECT().DecrementStock(ctx, ring.ID, 1).Return(repository.ErrInsufficientStock)
	})
	fixture.idempotency.EXPECT().Release(ctx, scope, "key-7").Return(nil)

	_, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:     &customerID,
		Items:          []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
		IdempotencyKey: "key-7",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrStockExhausted))
}

func TestOrderService_CreateOrder_GuestKeysAreNotShared(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()
	ring := newTestProduct("Gold Ring", 1000000, 5)

	fixture.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)
	fixture.expectTransaction(t, func(repos txRepos) {
		repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
		repos.products.EXPECT().DecrementStock(ctx, ring.ID, 1).Return(nil)
		repos.ledger.EXPECT().Record(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().CreateItems(ctx, mock.Anything).Return(nil)
		repos.orders.EXPECT().UpdateTotals(ctx, mock.Anything).Return(nil)
	})
	fixture.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	// No Reserve expectation: a guest key must never reach the shared store.
	order, err := fixture.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items:          []usecase.OrderItemInput{{ProductID: ring.ID, Quantity: 1}},
		IdempotencyKey: "guest-key",
	})
	require.NoError(t, err)
	assert.Nil(t, order.CustomerID)
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	identity := entity.SessionIdentity("sess-42")

	t.Run("empty cart", func(t *testing.T) {
		fixture := createTestOrderService(t)
		fixture.cartStore.EXPECT().Load(ctx, identity).Return(entity.NewCart(), nil)

		_, err := fixture.service.Checkout(ctx, &usecase.CheckoutInput{Identity: identity})
		assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
	})

	t.Run("clears cart after commit", func(t *testing.T) {
		fixture := createTestOrderService(t)
		ring := newTestProduct("Gold Ring", 1000000, 5)

		fixture.cartStore.EXPECT().Load(ctx, identity).
			Return(&entity.Cart{Items: map[uuid.UUID]int{ring.ID: 2}}, nil)
		fixture.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ring.ID}).
			Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)
		fixture.expectTransaction(t, func(repos txRepos) {
			repos.orders.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
			repos.products.EXPECT().DecrementStock(ctx, ring.ID, 2).Return(nil)
			repos.ledger.EXPECT().Record(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().CreateItems(ctx, mock.Anything).Return(nil)
			repos.orders.EXPECT().UpdateTotals(ctx, mock.Anything).Return(nil)
		})
		fixture.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)
		fixture.cartStore.EXPECT().Clear(ctx, identity).Return(nil)

		order, err := fixture.service.Checkout(ctx, &usecase.CheckoutInput{
			Identity:      identity,
			PaymentMethod: entity.PaymentMethodMpesa,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentMethodMpesa, order.PaymentMethod)
		assert.Equal(t, 2, order.TotalItems())
	})

	t.Run("failed order keeps cart", func(t *testing.T) {
		fixture := createTestOrderService(t)
		ring := newTestProduct("Gold Ring", 1000000, 1)

		fixture.cartStore.EXPECT().Load(ctx, identity).
			Return(&entity.Cart{Items: map[uuid.UUID]int{ring.ID: 3}}, nil)
		fixture.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{ring.ID}).
			Return(map[uuid.UUID]*entity.Product{ring.ID: ring}, nil)

		_, err := fixture.service.Checkout(ctx, &usecase.CheckoutInput{Identity: identity})
		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	number := generateOrderNumber(fixedNow)

	assert.Regexp(t, `^ORD-20250314-[0-9A-F]{6}$`, number)
}
