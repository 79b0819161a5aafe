package impl

import (
	"context"
	"log/slog"

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

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartStore   service.CartStore
	ProductRepo repository.ProductRepository
	Metrics     service.OrderMetrics
	Logger      *slog.Logger
}

type cartService struct {
	cartStore   service.CartStore
	productRepo repository.ProductRepository
	metrics     service.OrderMetrics
	logger      *slog.Logger
}

// NewCartService creates the cart use case.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartStore:   params.CartStore,
		productRepo: params.ProductRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the priced cart. Entries whose product no longer exists or is
// inactive are dropped and the pruned cart is written back.
func (srv *cartService) GetCart(ctx context.Context, identity entity.CartIdentity) (*entity.CartView, error) {
	cart, err := srv.cartStore.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrCartStoreFailed.WithDetails(err.Error()), "failed to load cart")
	}

	return srv.resolve(ctx, identity, cart)
}

// AddItem adds delta units of a product to the cart.
func (srv *cartService) AddItem(ctx context.Context, identity entity.CartIdentity, productID uuid.UUID, delta int) (*entity.CartView, error) {
	if !entity.ValidLineQuantity(delta) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.loadSellableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartStore.Update(ctx, identity, func(cart *entity.Cart) error {
		newQty := cart.Items[productID] + delta
		if newQty > entity.MaxLineQuantity {
			return domainerrors.ErrInvalidQuantity
		}
		if !product.CanFulfil(newQty) {
			return insufficientStockError(product)
		}
		cart.Items[productID] = newQty

		return nil
	})
	if err != nil {
		return nil, srv.wrapStoreError(err, "failed to add item to cart")
	}

	srv.metrics.CartMutated("add")
	srv.log(ctx).Debug("Cart item added",
		slog.String("cart", identity.Key()),
		slog.String("product_id", productID.String()),
		slog.Int("delta", delta),
	)

	return srv.resolve(ctx, identity, cart)
}

// SetQuantity replaces the quantity of a product in the cart.
func (srv *cartService) SetQuantity(ctx context.Context, identity entity.CartIdentity, productID uuid.UUID, qty int) (*entity.CartView, error) {
	if !entity.ValidLineQuantity(qty) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.loadSellableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !product.CanFulfil(qty) {
		return nil, insufficientStockError(product)
	}

	cart, err := srv.cartStore.Update(ctx, identity, func(cart *entity.Cart) error {
		cart.Items[productID] = qty

		return nil
	})
	if err != nil {
		return nil, srv.wrapStoreError(err, "failed to update cart quantity")
	}

	srv.metrics.CartMutated("set")

	return srv.resolve(ctx, identity, cart)
}

// RemoveItem removes a product from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, identity entity.CartIdentity, productID uuid.UUID) (*entity.CartView, error) {
	cart, err := srv.cartStore.Update(ctx, identity, func(cart *entity.Cart) error {
		if _, ok := cart.Items[productID]; !ok {
			return domainerrors.ErrCartItemNotFound
		}
		delete(cart.Items, productID)

		return nil
	})
	if err != nil {
		return nil, srv.wrapStoreError(err, "failed to remove cart item")
	}

	srv.metrics.CartMutated("remove")

	return srv.resolve(ctx, identity, cart)
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, identity entity.CartIdentity) error {
	if err := srv.cartStore.Clear(ctx, identity); err != nil {
		return srv.wrapStoreError(err, "failed to clear cart")
	}

	srv.metrics.CartMutated("clear")

	return nil
}

func (srv *cartService) loadSellableProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive {
		return nil, domainerrors.ErrProductUnavailable.WithMessagef("Product %s is not available", product.Name)
	}

	return product, nil
}

// resolve prices the cart against the catalog and prunes entries that can no longer be sold.
func (srv *cartService) resolve(ctx context.Context, identity entity.CartIdentity, cart *entity.Cart) (*entity.CartView, error) {
	view := &entity.CartView{Lines: make([]*entity.CartLine, 0, len(cart.Items))}
	if cart.IsEmpty() {
		return view, nil
	}

	ids := cart.ProductIDs()
	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	var stale []uuid.UUID
	for _, id := range ids {
		product, ok := products[id]
		if !ok || !product.IsActive {
			stale = append(stale, id)

			continue
		}

		qty := cart.Items[id]
		line := &entity.CartLine{
			Product:  product,
			Quantity: qty,
			Total:    product.Price.Mul(qty),
		}
		view.Lines = append(view.Lines, line)
		view.TotalItems += qty
		view.Total = view.Total.Add(line.Total)
	}

	if len(stale) > 0 {
		srv.prune(ctx, identity, stale)
	}

	return view, nil
}

func (srv *cartService) prune(ctx context.Context, identity entity.CartIdentity, stale []uuid.UUID) {
	_, err := srv.cartStore.Update(ctx, identity, func(cart *entity.Cart) error {
		for _, id := range stale {
			delete(cart.Items, id)
		}

		return nil
	})
	if err != nil {
		// The view is already correct; the next read retries the prune.
		srv.log(ctx).Warn("Failed to prune stale cart entries",
			slog.String("cart", identity.Key()),
			slog.Int("stale", len(stale)),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Pruned stale cart entries", slog.String("cart", identity.Key()), slog.Int("stale", len(stale)))
}

// wrapStoreError keeps domain errors raised inside a cart mutation and maps storage failures.
func (srv *cartService) wrapStoreError(err error, message string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, service.ErrCartConflict) {
		return errors.Wrap(domainerrors.ErrConflict.WithMessagef("Cart was modified concurrently, please retry"), message)
	}

	return errors.Wrap(domainerrors.ErrCartStoreFailed.WithDetails(err.Error()), message)
}

func insufficientStockError(product *entity.Product) error {
	return domainerrors.ErrInsufficientStock.WithMessagef(
		"Insufficient stock for %s. Available: %d", product.Name, product.StockQuantity,
	)
}
