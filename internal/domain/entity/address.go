package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCounty  = "Nairobi"
	DefaultCountry = "Kenya"
)

// OrderAddress is the delivery address snapshot taken when an order is placed.
// It is created fresh for each order and never edited afterwards.
type OrderAddress struct {
	ID         uuid.UUID
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	County     string
	PostalCode string
	Country    string
	Notes      string
	CreatedAt  time.Time
}

// ApplyDefaults fills the regional defaults for blank fields.
func (a *OrderAddress) ApplyDefaults() {
	if strings.TrimSpace(a.County) == "" {
		a.County = DefaultCounty
	}
	if strings.TrimSpace(a.Country) == "" {
		a.Country = DefaultCountry
	}
}

// AddressType describes what a saved customer address is used for.
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBoth     AddressType = "both"
)

// IsValid checks if the address type is a recognised value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeBilling, AddressTypeShipping, AddressTypeBoth:
		return true
	default:
		return false
	}
}

// CustomerAddress is an entry in a customer's address book. At most one
// address per (customer, address type) may be the default.
type CustomerAddress struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	AddressType AddressType
	FullName    string
	Phone       string
	Line1       string
	Line2       string
	City        string
	County      string
	PostalCode  string
	Country     string
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplyDefaults fills the regional defaults and the address type.
func (a *CustomerAddress) ApplyDefaults() {
	if a.AddressType == "" {
		a.AddressType = AddressTypeShipping
	}
	if strings.TrimSpace(a.County) == "" {
		a.County = DefaultCounty
	}
	if strings.TrimSpace(a.Country) == "" {
		a.Country = DefaultCountry
	}
}

// ToOrderAddress copies the address book entry into a new order snapshot.
func (a *CustomerAddress) ToOrderAddress() *OrderAddress {
	return &OrderAddress{
		FullName:   a.FullName,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		County:     a.County,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
