package impl

import (
	"context"
	"log/slog"

	deliverycontext "jewelshop/internal/delivery/context"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/domain/service"
	"jewelshop/internal/errors"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// StockAlertServiceParams holds dependencies for the stock alert service, injected by Fx.
type StockAlertServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Metrics     service.OrderMetrics
	Logger      *slog.Logger
}

type stockAlertService struct {
	productRepo repository.ProductRepository
	metrics     service.OrderMetrics
	logger      *slog.Logger
}

// NewStockAlertService creates the worker-side stock alert use case.
func NewStockAlertService(params StockAlertServiceParams) usecase.StockAlertUsecase {
	return &stockAlertService{
		productRepo: params.ProductRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// HandleOrderEvent checks the products of a newly created order against their
// low stock thresholds. Other event types are acknowledged without work.
func (srv *stockAlertService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) ([]*entity.Product, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event.Type != service.EventOrderCreated || len(event.Items) == 0 {
		logger.Debug("Ignoring order event", slog.String("type", event.Type), slog.String("order_number", event.OrderNumber))

		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(event.Items))
	for _, item := range event.Items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			logger.Warn("Skipping event item with invalid product id", slog.String("product_id", item.ProductID))

			continue
		}
		ids = append(ids, id)
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load event products")
	}

	var low []*entity.Product
	for _, id := range ids {
		product, ok := products[id]
		if !ok || !product.TrackInventory || !product.IsLowStock() {
			continue
		}

		low = append(low, product)
		srv.metrics.LowStock(product.ID.String(), product.StockQuantity)
		logger.Warn("Product stock is low",
			slog.String("product_id", product.ID.String()),
			slog.String("sku", product.SKU),
			slog.Int("remaining", product.StockQuantity),
			slog.Int("threshold", product.LowStockThreshold),
			slog.String("order_number", event.OrderNumber),
		)
	}

	return low, nil
}
