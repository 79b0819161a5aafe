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

// HeaderIdempotencyKey lets clients retry order creation without creating duplicates.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC     usecase.OrderUsecase
	LifecycleUC usecase.OrderLifecycleUsecase
	AddressUC   usecase.AddressUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// OrderHandler serves customer order placement and order history
type OrderHandler struct {
	orderUC     usecase.OrderUsecase
	lifecycleUC usecase.OrderLifecycleUsecase
	addressUC   usecase.AddressUsecase
	currency    string
	logger      *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:     params.OrderUC,
		lifecycleUC: params.LifecycleUC,
		addressUC:   params.AddressUC,
		currency:    params.Config.Order.Currency,
		logger:      params.Logger,
	}
}

// CheckoutRequest turns the caller's cart into an order. The address is either
// given inline or taken from the caller's address book.
type CheckoutRequest struct {
	Address       *OrderAddressRequest `json:"address" validate:"required_without=AddressID"`
	AddressID     string               `json:"address_id" validate:"omitempty,uuid"`
	PaymentMethod string               `json:"payment_method"`
	Notes         string               `json:"notes" validate:"max=1000"`
}

// OrderItemRequest is one requested order line
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"max=999"`
}

// CreateOrderRequest places an order from an explicit item list
type CreateOrderRequest struct {
	CheckoutRequest
	Items []OrderItemRequest `json:"items" validate:"dive"`
}

// CancelOrderRequest carries the optional cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// Checkout handles converting the cart into an order
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	idempotencyKey := c.Request().Header.Get(HeaderIdempotencyKey)
	if len(idempotencyKey) > maxIdempotencyKeyLength {
		return response.BadRequest(c, "INVALID_IDEMPOTENCY_KEY", "Idempotency key is too long")
	}

	address, err := h.resolveAddress(c, userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		Identity:       middleware.CartIdentity(c),
		CustomerID:     &userID,
		Address:        *address,
		PaymentMethod:  entity.PaymentMethod(req.PaymentMethod),
		Notes:          req.Notes,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order, h.currency, false))
}

// CreateOrder handles placing an order from an explicit item list
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	idempotencyKey := c.Request().Header.Get(HeaderIdempotencyKey)
	if len(idempotencyKey) > maxIdempotencyKeyLength {
		return response.BadRequest(c, "INVALID_IDEMPOTENCY_KEY", "Idempotency key is too long")
	}

	address, err := h.resolveAddress(c, userID, &req.CheckoutRequest)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		CustomerID:     &userID,
		Address:        *address,
		PaymentMethod:  entity.PaymentMethod(req.PaymentMethod),
		Notes:          req.Notes,
		Items:          items,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order, h.currency, false))
}

// ListOrders returns the caller's orders newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := bindPage(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
	}

	result, err := h.lifecycleUC.ListCustomerOrders(c.Request().Context(), userID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessPage(c, toOrderResponses(result.Orders, h.currency, false), &response.PageInfo{
		Number: page.Number,
		Size:   page.Size,
		Total:  result.Total,
	})
}

// GetOrder returns one of the caller's orders
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.lifecycleUC.GetCustomerOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order, h.currency, false))
}

// CancelOrder cancels one of the caller's orders while it is still pending or confirmed
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req CancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.lifecycleUC.Cancel(c.Request().Context(), userID, orderID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order, h.currency, false))
}

func (h *OrderHandler) resolveAddress(c echo.Context, userID uuid.UUID, req *CheckoutRequest) (*entity.OrderAddress, error) {
	if req.AddressID == "" {
		address := req.Address.toEntity()

		return &address, nil
	}

	saved, err := h.addressUC.Get(c.Request().Context(), userID, uuid.MustParse(req.AddressID))
	if err != nil {
		return nil, err
	}

	return saved.ToOrderAddress(), nil
}
