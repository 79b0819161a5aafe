package handler

import (
	"net/http"
	"testing"
	"time"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	mockUC "jewelshop/internal/mocks/usecase"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminTestServer(t *testing.T) (*testServer, *mockUC.MockOrderLifecycleUsecase, *mockUC.MockCatalogUsecase) {
	t.Helper()

	srv := newTestServer(t)
	lifecycleUC := mockUC.NewMockOrderLifecycleUsecase(t)
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{
		LifecycleUC: lifecycleUC,
		CatalogUC:   catalogUC,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	admin := srv.e.Group("/admin", srv.auth.Authenticate, srv.auth.RequireRole(entity.RoleAdmin))
	admin.GET("/orders", h.ListOrders)
	admin.POST("/orders/:id/update-status", h.UpdateOrderStatus)
	admin.GET("/products/:id/stock-movements", h.StockHistory)

	return srv, lifecycleUC, catalogUC
}

func TestAdminHandler_RequiresAdminRole(t *testing.T) {
	srv, _, _ := newAdminTestServer(t)

	rec, env := srv.do(t, http.MethodGet, "/admin/orders", "", map[string]string{"Authorization": srv.signIn(uuid.New(), "customer")})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestAdminHandler_ListOrders(t *testing.T) {
	srv, lifecycleUC, _ := newAdminTestServer(t)
	customerID := uuid.New()

	lifecycleUC.EXPECT().
		ListOrders(mock.Anything, entity.OrderStatusShipped, usecase.Page{Number: 1, Size: usecase.DefaultPageSize}).
		Return(&usecase.OrderListResult{Orders: []*entity.Order{newTestOrder(customerID)}, Total: 1}, nil)

	rec, env := srv.do(t, http.MethodGet, "/admin/orders?status=shipped", "", map[string]string{"Authorization": srv.signIn(uuid.New(), "admin")})

	require.Equal(t, http.StatusOK, rec.Code)

	orders := decodeData[[]OrderResponse](t, env)
	require.Len(t, orders, 1)
	assert.Equal(t, "call before delivery", orders[0].InternalNotes)
	require.NotNil(t, orders[0].CustomerID)
	assert.Equal(t, customerID, *orders[0].CustomerID)
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("any recognised status", func(t *testing.T) {
		srv, lifecycleUC, _ := newAdminTestServer(t)
		order := newTestOrder(uuid.New())
		order.TransitionTo(entity.OrderStatusShipped, time.Now())

		lifecycleUC.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderStatusShipped).Return(order, nil)

		rec, env := srv.do(t, http.MethodPost, "/admin/orders/"+order.ID.String()+"/update-status", `{"status":"shipped"}`,
			map[string]string{"Authorization": srv.signIn(uuid.New(), "admin")})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeData[OrderResponse](t, env)
		assert.Equal(t, "shipped", resp.Status)
		assert.NotNil(t, resp.ShippedAt)
	})

	t.Run("unknown status", func(t *testing.T) {
		srv, lifecycleUC, _ := newAdminTestServer(t)
		orderID := uuid.New()

		lifecycleUC.EXPECT().
			UpdateStatus(mock.Anything, orderID, entity.OrderStatus("lost")).
			Return(nil, domainerrors.ErrInvalidStatus.WithMessagef("Invalid status: %s", "lost"))

		rec, env := srv.do(t, http.MethodPost, "/admin/orders/"+orderID.String()+"/update-status", `{"status":"lost"}`,
			map[string]string{"Authorization": srv.signIn(uuid.New(), "admin")})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", env.Error.Code)
		assert.Equal(t, "Invalid status: lost", env.Error.Message)
	})

	t.Run("missing status", func(t *testing.T) {
		srv, _, _ := newAdminTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/admin/orders/"+uuid.NewString()+"/update-status", `{}`,
			map[string]string{"Authorization": srv.signIn(uuid.New(), "admin")})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestAdminHandler_StockHistory(t *testing.T) {
	srv, _, catalogUC := newAdminTestServer(t)
	productID, orderID := uuid.New(), uuid.New()

	catalogUC.EXPECT().
		StockHistory(mock.Anything, productID, 10).
		Return([]*entity.StockMovement{{
			ID:        uuid.New(),
			ProductID: productID,
			OrderID:   &orderID,
			Change:    -2,
			Reason:    entity.StockMovementOrder,
		}}, nil)

	rec, env := srv.do(t, http.MethodGet, "/admin/products/"+productID.String()+"/stock-movements?limit=10", "",
		map[string]string{"Authorization": srv.signIn(uuid.New(), "admin")})

	require.Equal(t, http.StatusOK, rec.Code)

	movements := decodeData[[]StockMovementResponse](t, env)
	require.Len(t, movements, 1)
	assert.Equal(t, -2, movements[0].Change)
	assert.Equal(t, "order", movements[0].Reason)
	assert.Equal(t, &orderID, movements[0].OrderID)
}
