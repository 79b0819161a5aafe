package handler

import (
	"log/slog"
	"net/http"

	"jewelshop/config"
	"jewelshop/internal/delivery/api/response"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves the public catalog
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	currency  string
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		currency:  params.Config.Order.Currency,
		logger:    params.Logger,
	}
}

// ListProducts returns active products. Supported filters: category, in_stock,
// featured, min_price and max_price (in cents).
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
	}

	filter, err := bindProductFilter(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	result, err := h.catalogUC.ListProducts(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products := make([]*ProductResponse, 0, len(result.Products))
	for _, product := range result.Products {
		products = append(products, toProductResponse(product, h.currency))
	}

	return response.SuccessPage(c, products, &response.PageInfo{
		Number: page.Number,
		Size:   page.Size,
		Total:  result.Total,
	})
}

// GetProduct returns an active product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product, h.currency))
}

func bindProductFilter(c echo.Context) (entity.ProductFilter, error) {
	var (
		filter             entity.ProductFilter
		minPrice, maxPrice int64
	)

	err := echo.QueryParamsBinder(c).
		String("category", &filter.CategorySlug).
		Bool("in_stock", &filter.InStockOnly).
		Bool("featured", &filter.FeaturedOnly).
		Int64("min_price", &minPrice).
		Int64("max_price", &maxPrice).
		BindError()
	if err != nil {
		return filter, err
	}

	if c.QueryParam("min_price") != "" {
		price := entity.Money(minPrice)
		filter.MinPrice = &price
	}
	if c.QueryParam("max_price") != "" {
		price := entity.Money(maxPrice)
		filter.MaxPrice = &price
	}

	return filter, nil
}
