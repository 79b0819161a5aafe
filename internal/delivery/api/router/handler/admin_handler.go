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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	LifecycleUC usecase.OrderLifecycleUsecase
	CatalogUC   usecase.CatalogUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// AdminHandler serves staff-only order management and stock inspection
type AdminHandler struct {
	lifecycleUC usecase.OrderLifecycleUsecase
	catalogUC   usecase.CatalogUsecase
	currency    string
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		lifecycleUC: params.LifecycleUC,
		catalogUC:   params.CatalogUC,
		currency:    params.Config.Order.Currency,
		logger:      params.Logger,
	}
}

// UpdateOrderStatusRequest sets a new order status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders returns all orders, optionally filtered by ?status=
func (h *AdminHandler) ListOrders(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
	}

	status := entity.OrderStatus(c.QueryParam("status"))

	result, err := h.lifecycleUC.ListOrders(c.Request().Context(), status, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessPage(c, toOrderResponses(result.Orders, h.currency, true), &response.PageInfo{
		Number: page.Number,
		Size:   page.Size,
		Total:  result.Total,
	})
}

// UpdateOrderStatus moves an order to any recognised status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.lifecycleUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Order status updated by staff",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
	)

	return response.Success(c, http.StatusOK, toOrderResponse(order, h.currency, true))
}

// StockHistory returns the newest stock ledger rows of a product
func (h *AdminHandler) StockHistory(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid limit")
	}

	movements, err := h.catalogUC.StockHistory(c.Request().Context(), productID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*StockMovementResponse, 0, len(movements))
	for _, movement := range movements {
		resp = append(resp, &StockMovementResponse{
			ID:        movement.ID,
			ProductID: movement.ProductID,
			OrderID:   movement.OrderID,
			Change:    movement.Change,
			Reason:    string(movement.Reason),
			CreatedAt: movement.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}
