package handler

import (
	"log/slog"
	"net/http"

	"jewelshop/internal/delivery/api/middleware"
	"jewelshop/internal/delivery/api/response"
	"jewelshop/internal/domain/entity"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the customer address book
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// SaveAddressRequest represents the request body for creating or replacing an address
type SaveAddressRequest struct {
	AddressType string `json:"address_type" validate:"max=20"`
	FullName    string `json:"full_name" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Line1       string `json:"line1" validate:"required,max=200"`
	Line2       string `json:"line2" validate:"max=200"`
	City        string `json:"city" validate:"required,max=100"`
	County      string `json:"county" validate:"max=100"`
	PostalCode  string `json:"postal_code" validate:"max=20"`
	Country     string `json:"country" validate:"max=100"`
	IsDefault   bool   `json:"is_default"`
}

func (r *SaveAddressRequest) toEntity(customerID uuid.UUID) *entity.CustomerAddress {
	return &entity.CustomerAddress{
		CustomerID:  customerID,
		AddressType: entity.AddressType(r.AddressType),
		FullName:    r.FullName,
		Phone:       r.Phone,
		Line1:       r.Line1,
		Line2:       r.Line2,
		City:        r.City,
		County:      r.County,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		IsDefault:   r.IsDefault,
	}
}

// CreateAddress handles adding an address to the caller's address book
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	address, err := h.addressUC.Create(c.Request().Context(), req.toEntity(userID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCustomerAddressResponse(address))
}

// ListAddresses returns the caller's address book, defaults first
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.addressUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		resp = append(resp, toCustomerAddressResponse(address))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.Get(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerAddressResponse(address))
}

// UpdateAddress replaces one of the caller's addresses
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req SaveAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	address := req.toEntity(userID)
	address.ID = addressID

	updated, err := h.addressUC.Update(c.Request().Context(), address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCustomerAddressResponse(updated))
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.Delete(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
