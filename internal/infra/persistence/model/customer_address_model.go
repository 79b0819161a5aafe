package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerAddressModel mirrors the 'customer_addresses' table. The partial unique
// index allows one default per (customer, address type).
type CustomerAddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_customer_addresses_on_customer;uniqueIndex:idx_customer_addresses_one_default,where:is_default"`
	AddressType string    `gorm:"type:varchar(10);not null;default:'shipping';uniqueIndex:idx_customer_addresses_one_default,where:is_default"`
	FullName    string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	Line1       string    `gorm:"column:address_line_1;type:varchar(255);not null"`
	Line2       string    `gorm:"column:address_line_2;type:varchar(255)"`
	City        string    `gorm:"type:varchar(100);not null"`
	County      string    `gorm:"type:varchar(100);not null;default:'Nairobi'"`
	PostalCode  string    `gorm:"type:varchar(20)"`
	Country     string    `gorm:"type:varchar(100);not null;default:'Kenya'"`
	IsDefault   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerAddressModel) TableName() string {
	return "customer_addresses"
}
