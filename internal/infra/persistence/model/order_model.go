package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderAddressModel mirrors the 'order_addresses' table. Rows are written once per order.
type OrderAddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName   string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(20);not null"`
	Line1      string    `gorm:"column:address_line_1;type:varchar(255);not null"`
	Line2      string    `gorm:"column:address_line_2;type:varchar(255)"`
	City       string    `gorm:"type:varchar(100);not null"`
	County     string    `gorm:"type:varchar(100);not null;default:'Nairobi'"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Country    string    `gorm:"type:varchar(100);not null;default:'Kenya'"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderAddressModel) TableName() string {
	return "order_addresses"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber   string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index:idx_orders_on_customer"`
	AddressID     uuid.UUID  `gorm:"type:uuid;not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_orders_on_status"`
	PaymentStatus string     `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod string     `gorm:"type:varchar(20);not null;default:'cod'"`
	SubtotalCents int64      `gorm:"not null;default:0"`
	ShippingCents int64      `gorm:"not null;default:0"`
	TaxCents      int64      `gorm:"not null;default:0"`
	TotalCents    int64      `gorm:"not null;default:0"`
	Notes         string     `gorm:"type:text"`
	InternalNotes string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"index:idx_orders_on_customer,sort:desc;index:idx_orders_on_status,sort:desc"`
	UpdatedAt     time.Time
	ConfirmedAt   *time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time

	Address *OrderAddressModel `gorm:"foreignKey:AddressID;constraint:OnDelete:RESTRICT"`
	Items   []*OrderItemModel  `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. A product appears at most once per order.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int       `gorm:"not null;check:chk_order_items_quantity,quantity >= 1"`
	PriceCents  int64     `gorm:"not null"`
	TotalCents  int64     `gorm:"not null"`
	CreatedAt   time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
