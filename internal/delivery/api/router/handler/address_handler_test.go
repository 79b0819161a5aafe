package handler

import (
	"context"
	"net/http"
	"testing"

	"jewelshop/internal/domain/entity"
	domainerrors "jewelshop/internal/domain/errors"
	mockUC "jewelshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressTestServer(t *testing.T) (*testServer, *mockUC.MockAddressUsecase) {
	t.Helper()

	srv := newTestServer(t)
	addressUC := mockUC.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()})

	addresses := srv.e.Group("/addresses", srv.auth.Authenticate)
	addresses.GET("", h.ListAddresses)
	addresses.POST("", h.CreateAddress)
	addresses.GET("/:id", h.GetAddress)
	addresses.PUT("/:id", h.UpdateAddress)
	addresses.DELETE("/:id", h.DeleteAddress)

	return srv, addressUC
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	srv, addressUC := newAddressTestServer(t)
	userID := uuid.New()

	addressUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(address *entity.CustomerAddress) bool {
			return address.CustomerID == userID && address.IsDefault && address.City == "Nairobi"
		})).
		RunAndReturn(func(_ context.Context, address *entity.CustomerAddress) (*entity.CustomerAddress, error) {
			address.ID = uuid.New()
			address.ApplyDefaults()

			return address, nil
		})

	body := `{"full_name":"Wanjiru Kamau","phone":"+254700000001","line1":"12 Moi Avenue","city":"Nairobi","is_default":true}`
	rec, env := srv.do(t, http.MethodPost, "/addresses", body, map[string]string{"Authorization": srv.signIn(userID)})

	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeData[AddressResponse](t, env)
	assert.Equal(t, "shipping", resp.AddressType)
	assert.Equal(t, entity.DefaultCountry, resp.Country)
	assert.True(t, resp.IsDefault)
}

func TestAddressHandler_CreateAddress_Validation(t *testing.T) {
	srv, _ := newAddressTestServer(t)

	rec, env := srv.do(t, http.MethodPost, "/addresses", `{"full_name":"Wanjiru Kamau"}`,
		map[string]string{"Authorization": srv.signIn(uuid.New())})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	details, ok := env.Error.Details.([]any)
	require.True(t, ok)
	assert.Len(t, details, 3, "phone, line1 and city are required")
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	srv, addressUC := newAddressTestServer(t)
	userID := uuid.New()

	addressUC.EXPECT().List(mock.Anything, userID).Return([]*entity.CustomerAddress{
		{ID: uuid.New(), CustomerID: userID, AddressType: entity.AddressTypeShipping, IsDefault: true},
		{ID: uuid.New(), CustomerID: userID, AddressType: entity.AddressTypeBilling},
	}, nil)

	rec, env := srv.do(t, http.MethodGet, "/addresses", "", map[string]string{"Authorization": srv.signIn(userID)})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]AddressResponse](t, env), 2)
}

func TestAddressHandler_UpdateAddress_ConcurrentDefault(t *testing.T) {
	srv, addressUC := newAddressTestServer(t)
	userID, addressID := uuid.New(), uuid.New()

	addressUC.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(address *entity.CustomerAddress) bool {
			return address.ID == addressID && address.CustomerID == userID
		})).
		Return(nil, domainerrors.ErrDefaultAddressConflict)

	body := `{"full_name":"Wanjiru Kamau","phone":"+254700000001","line1":"12 Moi Avenue","city":"Nairobi","is_default":true}`
	rec, env := srv.do(t, http.MethodPut, "/addresses/"+addressID.String(), body, map[string]string{"Authorization": srv.signIn(userID)})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DEFAULT_ADDRESS_CONFLICT", env.Error.Code)
}

func TestAddressHandler_GetAddress_Foreign(t *testing.T) {
	srv, addressUC := newAddressTestServer(t)
	userID, addressID := uuid.New(), uuid.New()

	addressUC.EXPECT().Get(mock.Anything, userID, addressID).Return(nil, domainerrors.ErrAddressNotFound)

	rec, env := srv.do(t, http.MethodGet, "/addresses/"+addressID.String(), "", map[string]string{"Authorization": srv.signIn(userID)})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", env.Error.Code)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	srv, addressUC := newAddressTestServer(t)
	userID, addressID := uuid.New(), uuid.New()

	addressUC.EXPECT().Delete(mock.Anything, userID, addressID).Return(nil)

	rec, _ := srv.do(t, http.MethodDelete, "/addresses/"+addressID.String(), "", map[string]string{"Authorization": srv.signIn(userID)})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
