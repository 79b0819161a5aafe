package handler

import (
	"log/slog"
	"net/http"

	"jewelshop/config"
	"jewelshop/internal/delivery/api/middleware"
	"jewelshop/internal/delivery/api/response"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Config *config.Config
	Logger *slog.Logger
}

// CartHandler serves the identity-keyed shopping cart
type CartHandler struct {
	cartUC   usecase.CartUsecase
	currency string
	logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:   params.CartUC,
		currency: params.Config.Order.Currency,
		logger:   params.Logger,
	}
}

// AddCartItemRequest adds units of a product. Quantity defaults to 1.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  *int   `json:"quantity" validate:"omitempty,max=999"`
}

// SetCartItemRequest sets the absolute quantity of a product
type SetCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"max=999"`
}

// RemoveCartItemRequest removes one product, or clears the cart when ProductID is empty
type RemoveCartItemRequest struct {
	ProductID string `json:"product_id" query:"product_id" validate:"omitempty,uuid"`
}

// GetCart returns the priced cart
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), middleware.CartIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(view, h.currency))
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), middleware.CartIdentity(c), uuid.MustParse(req.ProductID), quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCartResponse(view, h.currency))
}

// SetQuantity handles replacing the quantity of a cart entry
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req SetCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	view, err := h.cartUC.SetQuantity(c.Request().Context(), middleware.CartIdentity(c), uuid.MustParse(req.ProductID), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(view, h.currency))
}

// RemoveItem removes a single product or, without product_id, empties the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req RemoveCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	identity := middleware.CartIdentity(c)

	if req.ProductID == "" {
		if err := h.cartUC.Clear(ctx, identity); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, toCartResponse(&entity.CartView{}, h.currency))
	}

	view, err := h.cartUC.RemoveItem(ctx, identity, uuid.MustParse(req.ProductID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(view, h.currency))
}
