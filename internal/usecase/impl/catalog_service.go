package impl

import (
	"context"
	"log/slog"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	"jewelshop/internal/domain/repository"
	"jewelshop/internal/errors"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultStockHistoryLimit = 50
	maxStockHistoryLimit     = 200
)

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	MovementRepo repository.StockMovementRepository
	Logger       *slog.Logger
}

type catalogService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	logger       *slog.Logger
}

// NewCatalogService creates the catalog use case.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		movementRepo: params.MovementRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter, page usecase.Page) (*usecase.ProductListResult, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("min_price must not exceed max_price")
	}

	page = page.Normalize()
	filter.Offset = page.Offset()
	filter.Limit = page.Size

	products, total, err := srv.productRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListResult{Products: products, Total: total}, nil
}

// GetProduct hides inactive products from shoppers.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (srv *catalogService) StockHistory(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.StockMovement, error) {
	if limit < 1 {
		limit = defaultStockHistoryLimit
	}
	if limit > maxStockHistoryLimit {
		limit = maxStockHistoryLimit
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	movements, err := srv.movementRepo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock movements")
	}

	return movements, nil
}
