package handler

import (
	"net/http"
	"testing"

	"jewelshop/internal/delivery/api/middleware"
	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	mockUC "jewelshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestServer(t *testing.T) (*testServer, *mockUC.MockCartUsecase) {
	t.Helper()

	srv := newTestServer(t)
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Config: newTestConfig(), Logger: newDiscardLogger()})

	group := srv.e.Group("/cart", srv.auth.OptionalAuthenticate, srv.session.Process)
	group.GET("", h.GetCart)
	group.POST("", h.AddItem)
	group.PUT("", h.SetQuantity)
	group.DELETE("", h.RemoveItem)

	return srv, cartUC
}

func newTestCartView(quantity int) *entity.CartView {
	product := &entity.Product{ID: uuid.New(), Name: "Gold Hoops", Slug: "gold-hoops", Price: 250000}

	return &entity.CartView{
		Lines:      []*entity.CartLine{{Product: product, Quantity: quantity, Total: product.Price.Mul(quantity)}},
		TotalItems: quantity,
		Total:      product.Price.Mul(quantity),
	}
}

func TestCartHandler_GetCart_GuestSession(t *testing.T) {
	srv, cartUC := newCartTestServer(t)

	cartUC.EXPECT().
		GetCart(mock.Anything, entity.SessionIdentity("guest-123")).
		Return(newTestCartView(2), nil)

	rec, env := srv.do(t, http.MethodGet, "/cart", "", map[string]string{middleware.HeaderXSessionID: "guest-123"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest-123", rec.Header().Get(middleware.HeaderXSessionID))

	cart := decodeData[CartResponse](t, env)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, int64(500000), cart.TotalCents)
	assert.Equal(t, "KES 5,000.00", cart.TotalDisplay)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(250000), cart.Items[0].PriceCents)
	assert.Equal(t, int64(500000), cart.Items[0].TotalCents)
}

func TestCartHandler_GetCart_MintsSession(t *testing.T) {
	srv, cartUC := newCartTestServer(t)

	cartUC.EXPECT().
		GetCart(mock.Anything, mock.MatchedBy(func(identity entity.CartIdentity) bool {
			return identity.SessionID != "" && identity.UserID == nil
		})).
		Return(&entity.CartView{}, nil)

	rec, env := srv.do(t, http.MethodGet, "/cart", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderXSessionID))

	cart := decodeData[CartResponse](t, env)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "KES 0.00", cart.TotalDisplay)
}

func TestCartHandler_AddItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("defaults to one unit for the signed-in user", func(t *testing.T) {
		srv, cartUC := newCartTestServer(t)

		cartUC.EXPECT().
			AddItem(mock.Anything, entity.UserIdentity(userID), productID, 1).
			Return(newTestCartView(1), nil)

		rec, _ := srv.do(t, http.MethodPost, "/cart", `{"product_id":"`+productID.String()+`"}`,
			map[string]string{"Authorization": srv.signIn(userID)})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("explicit zero is passed through and rejected", func(t *testing.T) {
		srv, cartUC := newCartTestServer(t)

		cartUC.EXPECT().
			AddItem(mock.Anything, mock.Anything, productID, 0).
			Return(nil, domainerrors.ErrInvalidQuantity)

		rec, env := srv.do(t, http.MethodPost, "/cart", `{"product_id":"`+productID.String()+`","quantity":0}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_QUANTITY", env.Error.Code)
	})

	t.Run("quantity above the line limit", func(t *testing.T) {
		srv, _ := newCartTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/cart", `{"product_id":"`+productID.String()+`","quantity":1000}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		srv, cartUC := newCartTestServer(t)

		cartUC.EXPECT().
			AddItem(mock.Anything, mock.Anything, productID, 3).
			Return(nil, domainerrors.ErrProductNotFound)

		rec, env := srv.do(t, http.MethodPost, "/cart", `{"product_id":"`+productID.String()+`","quantity":3}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
	})

	t.Run("malformed product id", func(t *testing.T) {
		srv, _ := newCartTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/cart", `{"product_id":"ring"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("invalid token is rejected even on guest routes", func(t *testing.T) {
		srv, _ := newCartTestServer(t)
		srv.tokenSvc.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrUnauthorized)

		rec, env := srv.do(t, http.MethodPost, "/cart", `{"product_id":"`+productID.String()+`"}`,
			map[string]string{"Authorization": "Bearer bad"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})
}

func TestCartHandler_SetQuantity(t *testing.T) {
	srv, cartUC := newCartTestServer(t)
	productID := uuid.New()

	cartUC.EXPECT().
		SetQuantity(mock.Anything, entity.SessionIdentity("guest-1"), productID, 4).
		Return(newTestCartView(4), nil)

	rec, env := srv.do(t, http.MethodPut, "/cart", `{"product_id":"`+productID.String()+`","quantity":4}`,
		map[string]string{middleware.HeaderXSessionID: "guest-1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decodeData[CartResponse](t, env).TotalItems)

	rec, env = srv.do(t, http.MethodPut, "/cart", `{"product_id":"`+productID.String()+`","quantity":5000000}`,
		map[string]string{middleware.HeaderXSessionID: "guest-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	productID := uuid.New()
	headers := map[string]string{middleware.HeaderXSessionID: "guest-1"}

	t.Run("removes one product", func(t *testing.T) {
		srv, cartUC := newCartTestServer(t)

		cartUC.EXPECT().
			RemoveItem(mock.Anything, entity.SessionIdentity("guest-1"), productID).
			Return(&entity.CartView{}, nil)

		rec, _ := srv.do(t, http.MethodDelete, "/cart", `{"product_id":"`+productID.String()+`"}`, headers)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("product not in cart", func(t *testing.T) {
		srv, cartUC := newCartTestServer(t)

		cartUC.EXPECT().
			RemoveItem(mock.Anything, mock.Anything, productID).
			Return(nil, domainerrors.ErrCartItemNotFound)

		rec, env := srv.do(t, http.MethodDelete, "/cart?product_id="+productID.String(), "", headers)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CART_ITEM_NOT_FOUND", env.Error.Code)
	})

	t.Run("clears without product id", func(t *testing.T) {
		srv, cartUC := newCartTestServer(t)

		cartUC.EXPECT().Clear(mock.Anything, entity.SessionIdentity("guest-1")).Return(nil)

		rec, env := srv.do(t, http.MethodDelete, "/cart", "", headers)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, decodeData[CartResponse](t, env).TotalItems)
	})
}
