package handler

import (
	"time"

	"jewelshop/internal/domain/entity"
	"jewelshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderAddressRequest is the delivery address captured with an order
type OrderAddressRequest struct {
	FullName   string `json:"full_name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,max=20"`
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	County     string `json:"county" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
	Country    string `json:"country" validate:"max=100"`
	Notes      string `json:"notes" validate:"max=500"`
}

func (r *OrderAddressRequest) toEntity() entity.OrderAddress {
	return entity.OrderAddress{
		FullName:   r.FullName,
		Phone:      r.Phone,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		County:     r.County,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Notes:      r.Notes,
	}
}

// AddressResponse is the public shape of both order and address book addresses
type AddressResponse struct {
	ID          uuid.UUID  `json:"id"`
	AddressType string     `json:"address_type,omitempty"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	Line1       string     `json:"line1"`
	Line2       string     `json:"line2,omitempty"`
	City        string     `json:"city"`
	County      string     `json:"county"`
	PostalCode  string     `json:"postal_code,omitempty"`
	Country     string     `json:"country"`
	Notes       string     `json:"notes,omitempty"`
	IsDefault   bool       `json:"is_default"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toOrderAddressResponse(address *entity.OrderAddress) *AddressResponse {
	if address == nil {
		return nil
	}

	return &AddressResponse{
		ID:         address.ID,
		FullName:   address.FullName,
		Phone:      address.Phone,
		Line1:      address.Line1,
		Line2:      address.Line2,
		City:       address.City,
		County:     address.County,
		PostalCode: address.PostalCode,
		Country:    address.Country,
		Notes:      address.Notes,
		CreatedAt:  address.CreatedAt,
	}
}

func toCustomerAddressResponse(address *entity.CustomerAddress) *AddressResponse {
	updatedAt := address.UpdatedAt

	return &AddressResponse{
		ID:          address.ID,
		AddressType: string(address.AddressType),
		FullName:    address.FullName,
		Phone:       address.Phone,
		Line1:       address.Line1,
		Line2:       address.Line2,
		City:        address.City,
		County:      address.County,
		PostalCode:  address.PostalCode,
		Country:     address.Country,
		IsDefault:   address.IsDefault,
		CreatedAt:   address.CreatedAt,
		UpdatedAt:   &updatedAt,
	}
}

// ProductResponse is a catalog entry with derived stock and pricing fields
type ProductResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	SKU                string    `json:"sku"`
	Category           string    `json:"category"`
	Description        string    `json:"description,omitempty"`
	Material           string    `json:"material,omitempty"`
	PriceCents         int64     `json:"price_cents"`
	PriceDisplay       string    `json:"price_display"`
	ComparePriceCents  *int64    `json:"compare_price_cents,omitempty"`
	DiscountPercentage int       `json:"discount_percentage"`
	StockStatus        string    `json:"stock_status"`
	InStock            bool      `json:"in_stock"`
	WeightGrams        *int      `json:"weight_grams,omitempty"`
	IsFeatured         bool      `json:"is_featured"`
}

func toProductResponse(product *entity.Product, currency string) *ProductResponse {
	resp := &ProductResponse{
		ID:                 product.ID,
		Name:               product.Name,
		Slug:               product.Slug,
		SKU:                product.SKU,
		Category:           product.CategorySlug,
		Description:        product.Description,
		Material:           product.Material,
		PriceCents:         product.Price.Cents(),
		PriceDisplay:       product.Price.Display(currency),
		DiscountPercentage: product.DiscountPercentage(),
		StockStatus:        string(product.StockStatus()),
		InStock:            product.IsInStock(),
		WeightGrams:        product.WeightGrams,
		IsFeatured:         product.IsFeatured,
	}
	if product.ComparePrice != nil {
		compare := product.ComparePrice.Cents()
		resp.ComparePriceCents = &compare
	}

	return resp
}

// CartItemResponse is one priced cart line
type CartItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSlug string    `json:"product_slug"`
	PriceCents  int64     `json:"price_cents"`
	Quantity    int       `json:"quantity"`
	TotalCents  int64     `json:"total_cents"`
}

// CartResponse is the detailed cart
type CartResponse struct {
	Items        []*CartItemResponse `json:"items"`
	TotalItems   int                 `json:"total_items"`
	TotalCents   int64               `json:"total_cents"`
	TotalDisplay string              `json:"total_display"`
}

func toCartResponse(view *entity.CartView, currency string) *CartResponse {
	resp := &CartResponse{
		Items:        make([]*CartItemResponse, 0, len(view.Lines)),
		TotalItems:   view.TotalItems,
		TotalCents:   view.Total.Cents(),
		TotalDisplay: view.Total.Display(currency),
	}
	for _, line := range view.Lines {
		resp.Items = append(resp.Items, &CartItemResponse{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			ProductSlug: line.Product.Slug,
			PriceCents:  line.Product.Price.Cents(),
			Quantity:    line.Quantity,
			TotalCents:  line.Total.Cents(),
		})
	}

	return resp
}

// OrderItemResponse is one order line with its price snapshot
type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PriceCents  int64     `json:"price_cents"`
	TotalCents  int64     `json:"total_cents"`
}

// OrderResponse is an order as seen by its customer. InternalNotes is only filled for staff.
type OrderResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrderNumber    string               `json:"order_number"`
	CustomerID     *uuid.UUID           `json:"customer_id,omitempty"`
	Status         string               `json:"status"`
	PaymentStatus  string               `json:"payment_status"`
	PaymentMethod  string               `json:"payment_method"`
	SubtotalCents  int64                `json:"subtotal_cents"`
	ShippingCents  int64                `json:"shipping_cents"`
	TaxCents       int64                `json:"tax_cents"`
	TotalCents     int64                `json:"total_cents"`
	TotalDisplay   string               `json:"total_display"`
	TotalItems     int                  `json:"total_items"`
	CanBeCancelled bool                 `json:"can_be_cancelled"`
	Notes          string               `json:"notes,omitempty"`
	InternalNotes  string               `json:"internal_notes,omitempty"`
	Address        *AddressResponse     `json:"address"`
	Items          []*OrderItemResponse `json:"items"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	ConfirmedAt    *time.Time           `json:"confirmed_at,omitempty"`
	ShippedAt      *time.Time           `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time           `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time           `json:"cancelled_at,omitempty"`
}

func toOrderResponse(order *entity.Order, currency string, staff bool) *OrderResponse {
	resp := &OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		PaymentMethod:  string(order.PaymentMethod),
		SubtotalCents:  order.Subtotal.Cents(),
		ShippingCents:  order.Shipping.Cents(),
		TaxCents:       order.Tax.Cents(),
		TotalCents:     order.Total.Cents(),
		TotalDisplay:   order.Total.Display(currency),
		TotalItems:     order.TotalItems(),
		CanBeCancelled: order.CanBeCancelled(),
		Notes:          order.Notes,
		Address:        toOrderAddressResponse(order.Address),
		Items:          make([]*OrderItemResponse, 0, len(order.Items)),
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		ConfirmedAt:    order.ConfirmedAt,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
		CancelledAt:    order.CancelledAt,
	}
	if staff {
		resp.CustomerID = order.CustomerID
		resp.InternalNotes = order.InternalNotes
	}

	for _, item := range order.Items {
		resp.Items = append(resp.Items, &OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			PriceCents:  item.Price.Cents(),
			TotalCents:  item.Total.Cents(),
		})
	}

	return resp
}

func toOrderResponses(orders []*entity.Order, currency string, staff bool) []*OrderResponse {
	resp := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order, currency, staff))
	}

	return resp
}

// StockMovementResponse is one stock ledger row
type StockMovementResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	Change    int        `json:"change"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"created_at"`
}

// bindPage reads page and page_size query parameters.
func bindPage(c echo.Context) (usecase.Page, error) {
	var page usecase.Page
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Number).
		Int("page_size", &page.Size).
		BindError()

	return page.Normalize(), err
}
