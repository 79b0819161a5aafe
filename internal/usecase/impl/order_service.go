package impl

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"jewelshop/config"
	deliverycontext "jewelshop/internal/delivery/context"
	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderNumberAttempts is the number of transactions tried before a number collision is reported.
const orderNumberAttempts = 2

// OrderServiceParams holds dependencies for the order assembly service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	CartStore   service.CartStore
	Publisher   service.EventPublisher
	Idempotency service.IdempotencyStore
	Metrics     service.OrderMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

type orderService struct {
	txManager      repository.TransactionManager
	productRepo    repository.ProductRepository
	orderRepo      repository.OrderRepository
	cartStore      service.CartStore
	publisher      service.EventPublisher
	idempotency    service.IdempotencyStore
	metrics        service.OrderMetrics
	shipping       entity.Money
	taxBasisPoints int64
	logger         *slog.Logger

	now            func() time.Time
	newOrderNumber func(now time.Time) string
}

// NewOrderService creates the order assembly use case.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:      params.TxManager,
		productRepo:    params.ProductRepo,
		orderRepo:      params.OrderRepo,
		cartStore:      params.CartStore,
		publisher:      params.Publisher,
		idempotency:    params.Idempotency,
		metrics:        params.Metrics,
		logger:         params.Logger,
		now:            time.Now,
		newOrderNumber: generateOrderNumber,
	}

	if params.Config != nil && params.Config.Order != nil {
		srv.shipping = entity.Money(params.Config.Order.ShippingCents)
		srv.taxBasisPoints = params.Config.Order.TaxBasisPoints
	}

	return srv
}

// generateOrderNumber returns ORD-YYYYMMDD-XXXXXX with six upper-case hex digits of random entropy.
func generateOrderNumber(now time.Time) string {
	id := uuid.New()

	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(id[:3])))
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// orderLine is a validated, merged request line.
type orderLine struct {
	product  *entity.Product
	quantity int
}

// Checkout converts the identity's cart into an order and clears the cart once the order is committed.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input.Identity.IsZero() {
		return nil, domainerrors.ErrEmptyCart
	}

	cart, err := srv.cartStore.Load(ctx, input.Identity)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrCartStoreFailed.WithDetails(err.Error()), "failed to load cart for checkout")
	}

	if cart.IsEmpty() {
		srv.metrics.OrderRejected("empty_cart")

		return nil, domainerrors.ErrEmptyCart
	}

	items := make([]usecase.OrderItemInput, 0, len(cart.Items))
	for _, productID := range cart.ProductIDs() {
		items = append(items, usecase.OrderItemInput{ProductID: productID, Quantity: cart.Items[productID]})
	}

	order, err := srv.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:     input.CustomerID,
		Address:        input.Address,
		PaymentMethod:  input.PaymentMethod,
		Notes:          input.Notes,
		Items:          items,
		IdempotencyKey: input.IdempotencyKey,
	})
	if err != nil {
		return nil, err
	}

	if err := srv.cartStore.Clear(ctx, input.Identity); err != nil {
		// The order is committed; a stale cart only costs the shopper a manual clear.
		srv.log(ctx).Warn("Failed to clear cart after checkout",
			slog.String("cart", input.Identity.Key()),
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)
	}

	return order, nil
}

// CreateOrder validates the requested items against the catalog, then persists the
// order and decrements stock inside a single transaction. A customer's Idempotency-Key
// is reserved before assembly so concurrent retries cannot create a second order.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	scope, ok := idempotencyScope(input.CustomerID)
	if !ok || input.IdempotencyKey == "" {
		return srv.createOrder(ctx, input)
	}

	existing, reserved, err := srv.reserveIdempotencyKey(ctx, scope, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	order, err := srv.createOrder(ctx, input)
	if !reserved {
		return order, err
	}

	logger := srv.log(ctx)
	if err != nil {
		if releaseErr := srv.idempotency.Release(ctx, scope, input.IdempotencyKey); releaseErr != nil {
			logger.Warn("Failed to release idempotency key", slog.Any("error", releaseErr))
		}

		return nil, err
	}

	if err := srv.idempotency.Complete(ctx, scope, input.IdempotencyKey, order.ID); err != nil {
		logger.Warn("Failed to store idempotency key", slog.String("order_number", order.OrderNumber), slog.Any("error", err))
	}

	return order, nil
}

func (srv *orderService) createOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCOD
	}
	if !paymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	lines, err := srv.validateItems(ctx, input.Items)
	if err != nil {
		srv.metrics.OrderRejected(string(domainerrors.KindOf(err)))

		return nil, err
	}

	address := input.Address
	address.ApplyDefaults()

	var order *entity.Order
	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		order, err = srv.persistOrder(ctx, input, paymentMethod, address, lines)
		if !errors.Is(err, repository.ErrOrderNumberTaken) {
			break
		}

		srv.log(ctx).Warn("Order number collision, regenerating", slog.Int("attempt", attempt))
	}

	if errors.Is(err, repository.ErrOrderNumberTaken) {
		err = domainerrors.ErrOrderNumberCollision
	}
	if err != nil {
		srv.metrics.OrderRejected(string(domainerrors.KindOf(err)))
		srv.log(ctx).Error("Failed to create order", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.afterOrderCreated(ctx, order)

	return order, nil
}

// validateItems merges duplicate products and checks every line against the current catalog.
func (srv *orderService) validateItems(ctx context.Context, items []usecase.OrderItemInput) ([]orderLine, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	quantities := make(map[uuid.UUID]int, len(items))
	ordered := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if !entity.ValidLineQuantity(item.Quantity) {
			return nil, domainerrors.ErrInvalidQuantity
		}
		if _, seen := quantities[item.ProductID]; !seen {
			ordered = append(ordered, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
		if quantities[item.ProductID] > entity.MaxLineQuantity {
			return nil, domainerrors.ErrInvalidQuantity
		}
	}

	products, err := srv.productRepo.FindByIDs(ctx, ordered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}

	lines := make([]orderLine, 0, len(ordered))
	for _, productID := range ordered {
		product, ok := products[productID]
		if !ok {
			return nil, domainerrors.ErrProductUnavailable.WithMessagef("Product %s is not available", productID)
		}
		if !product.IsActive {
			return nil, domainerrors.ErrProductUnavailable.WithMessagef("Product %s is not available", product.Name)
		}

		qty := quantities[productID]
		if !product.CanFulfil(qty) {
			return nil, insufficientStockError(product)
		}

		lines = append(lines, orderLine{product: product, quantity: qty})
	}

	return lines, nil
}

func (srv *orderService) persistOrder(
	ctx context.Context,
	input *usecase.CreateOrderInput,
	paymentMethod entity.PaymentMethod,
	address entity.OrderAddress,
	lines []orderLine,
) (*entity.Order, error) {
	var created *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()
		ledger := repoFactory.StockMovementRepo()

		now := srv.now()
		snapshot := address
		snapshot.ID = uuid.New()
		snapshot.CreatedAt = now
		if err := orderRepo.CreateAddress(ctx, &snapshot); err != nil {
			return errors.Wrap(err, "failed to create order address")
		}

		order := &entity.Order{
			ID:            uuid.New(),
			OrderNumber:   srv.newOrderNumber(now),
			CustomerID:    input.CustomerID,
			Address:       &snapshot,
			Status:        entity.OrderStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
			PaymentMethod: paymentMethod,
			Shipping:      srv.shipping,
			Notes:         input.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		order.RecalculateTotals()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range lines {
			order.AddItem(line.product.ID, line.product.Name, line.quantity, line.product.Price)
		}

		// Row locks are taken in product id order so concurrent orders cannot deadlock.
		for _, line := range inLockOrder(lines) {
			product := line.product
			if !product.TrackInventory {
				continue
			}

			if err := productRepo.DecrementStock(ctx, product.ID, line.quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrStockExhausted.WithMessagef("Insufficient stock for %s", product.Name)
				}

				return errors.Wrap(err, "failed to decrement stock")
			}

			orderID := order.ID
			if err := ledger.Record(ctx, &entity.StockMovement{
				ID:        uuid.New(),
				ProductID: product.ID,
				OrderID:   &orderID,
				Change:    -line.quantity,
				Reason:    entity.StockMovementOrder,
				CreatedAt: now,
			}); err != nil {
				return errors.Wrap(err, "failed to record stock movement")
			}
		}

		for _, item := range order.Items {
			item.CreatedAt = now
		}
		if err := orderRepo.CreateItems(ctx, order.Items); err != nil {
			return errors.Wrap(err, "failed to create order items")
		}

		order.Tax = order.Subtotal.ApplyBasisPoints(srv.taxBasisPoints)
		order.RecalculateTotals()
		if err := orderRepo.UpdateTotals(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order totals")
		}

		created = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func inLockOrder(lines []orderLine) []orderLine {
	sorted := slices.Clone(lines)
	slices.SortFunc(sorted, func(a, b orderLine) int {
		return bytes.Compare(a.product.ID[:], b.product.ID[:])
	})

	return sorted
}

// afterOrderCreated runs the post-commit side effects. None of them can fail the request.
func (srv *orderService) afterOrderCreated(ctx context.Context, order *entity.Order) {
	logger := srv.log(ctx)

	srv.metrics.OrderCreated(string(order.PaymentMethod), order.Total.Cents())

	event := newOrderEvent(ctx, service.EventOrderCreated, order)
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Error("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)
	}

	logger.Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("order_number", order.OrderNumber),
		slog.Int64("total_cents", order.Total.Cents()),
		slog.Int("items", len(order.Items)),
	)
}

// reserveIdempotencyKey returns the order an earlier request produced for key, or
// reserved=true when this request owns the key. A store outage degrades to no protection.
func (srv *orderService) reserveIdempotencyKey(ctx context.Context, scope, key string) (*entity.Order, bool, error) {
	orderID, reserved, err := srv.idempotency.Reserve(ctx, scope, key)
	if errors.Is(err, service.ErrIdempotencyKeyInProgress) {
		return nil, false, domainerrors.ErrIdempotencyKeyInUse
	}
	if err != nil {
		srv.log(ctx).Warn("Idempotency reservation failed, creating the order unprotected", slog.Any("error", err))

		return nil, false, nil
	}
	if reserved {
		return nil, true, nil
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		srv.log(ctx).Warn("Order for idempotency key not found", slog.String("order_id", orderID.String()), slog.Any("error", err))

		return nil, false, nil
	}

	srv.log(ctx).Info("Replaying order for idempotency key", slog.String("order_number", order.OrderNumber))

	return order, false, nil
}

// idempotencyScope keys Idempotency-Key values per customer. Guests get no scope.
func idempotencyScope(customerID *uuid.UUID) (string, bool) {
	if customerID == nil {
		return "", false
	}

	return "customer:" + customerID.String(), true
}

func newOrderEvent(ctx context.Context, eventType string, order *entity.Order) *service.OrderEvent {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		TotalCents:  order.Total.Cents(),
		OccurredAt:  order.UpdatedAt,
	}
	if order.CustomerID != nil {
		event.CustomerID = order.CustomerID.String()
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, service.OrderEventItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}

	return event
}
