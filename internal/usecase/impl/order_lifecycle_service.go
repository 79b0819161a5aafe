package impl

import (
	"context"
	"log/slog"
	"time"

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

// OrderLifecycleServiceParams holds dependencies for the order lifecycle service, injected by Fx.
type OrderLifecycleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.OrderMetrics
	Logger    *slog.Logger
}

type orderLifecycleService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	metrics   service.OrderMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderLifecycleService creates the order lifecycle use case.
func NewOrderLifecycleService(params OrderLifecycleServiceParams) usecase.OrderLifecycleUsecase {
	return &orderLifecycleService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderLifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Cancel cancels an order owned by the customer. Stock is not returned to the ledger.
func (srv *orderLifecycleService) Cancel(ctx context.Context, customerID, orderID uuid.UUID, reason string) (*entity.Order, error) {
	var cancelled *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := lockOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}
		if !ownedBy(order, customerID) {
			return domainerrors.ErrOrderNotFound
		}
		if !order.CanBeCancelled() {
			return domainerrors.ErrOrderNotCancellable
		}

		order.Cancel(reason, srv.now())
		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}

		cancelled = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	srv.afterStatusChange(ctx, service.EventOrderCancelled, cancelled)

	return cancelled, nil
}

// UpdateStatus sets any recognised status. Transitions are not restricted.
func (srv *orderLifecycleService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithMessagef("Invalid status: %s", status)
	}

	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := lockOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}

		order.TransitionTo(status, srv.now())
		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.afterStatusChange(ctx, service.EventOrderStatusChanged, updated)

	return updated, nil
}

// GetCustomerOrder returns the order when the customer owns it. Orders of other
// customers are reported as not found.
func (srv *orderLifecycleService) GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if !ownedBy(order, customerID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (srv *orderLifecycleService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, page usecase.Page) (*usecase.OrderListResult, error) {
	return srv.list(ctx, repository.OrderListFilter{CustomerID: &customerID}, page)
}

func (srv *orderLifecycleService) ListOrders(ctx context.Context, status entity.OrderStatus, page usecase.Page) (*usecase.OrderListResult, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithMessagef("Invalid status: %s", status)
	}

	return srv.list(ctx, repository.OrderListFilter{Status: status}, page)
}

func (srv *orderLifecycleService) list(ctx context.Context, filter repository.OrderListFilter, page usecase.Page) (*usecase.OrderListResult, error) {
	page = page.Normalize()
	filter.Offset = page.Offset()
	filter.Limit = page.Size

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListResult{Orders: orders, Total: total}, nil
}

func (srv *orderLifecycleService) afterStatusChange(ctx context.Context, eventType string, order *entity.Order) {
	logger := srv.log(ctx)

	srv.metrics.OrderStatusChanged(string(order.Status))

	event := newOrderEvent(ctx, eventType, order)
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Error("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_number", order.OrderNumber),
			slog.Any("error", err),
		)
	}

	logger.Info("Order status changed",
		slog.String("order_number", order.OrderNumber),
		slog.String("status", string(order.Status)),
	)
}

func lockOrder(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock order")
	}

	return order, nil
}

func ownedBy(order *entity.Order, customerID uuid.UUID) bool {
	return order.CustomerID != nil && *order.CustomerID == customerID
}
