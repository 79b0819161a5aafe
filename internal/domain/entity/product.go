package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLowStockThreshold applies when a product does not set its own threshold.
const DefaultLowStockThreshold = 5

// StockStatus is the derived availability label shown to shoppers.
type StockStatus string

const (
	StockStatusUnlimited  StockStatus = "unlimited"
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusInStock    StockStatus = "in_stock"
)

// Product is a purchasable catalog item.
type Product struct {
	ID                uuid.UUID
	CategorySlug      string
	Name              string
	Slug              string
	SKU               string
	Description       string
	Material          string
	Price             Money
	ComparePrice      *Money // Previous price, shown as a discount when higher than Price
	TrackInventory    bool
	StockQuantity     int
	LowStockThreshold int
	WeightGrams       *int
	IsActive          bool
	IsFeatured        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsInStock reports whether the product can currently be sold at all.
func (p *Product) IsInStock() bool {
	return !p.TrackInventory || p.StockQuantity > 0
}

// IsLowStock reports whether the remaining stock is at or below the threshold.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}

// CanFulfil reports whether qty units can be sold right now.
func (p *Product) CanFulfil(qty int) bool {
	return !p.TrackInventory || p.StockQuantity >= qty
}

// StockStatus derives the availability label.
func (p *Product) StockStatus() StockStatus {
	switch {
	case !p.TrackInventory:
		return StockStatusUnlimited
	case p.StockQuantity <= 0:
		return StockStatusOutOfStock
	case p.IsLowStock():
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// DiscountPercentage returns the whole-percent saving against ComparePrice, or 0.
func (p *Product) DiscountPercentage() int {
	if p.ComparePrice == nil || *p.ComparePrice <= p.Price || *p.ComparePrice == 0 {
		return 0
	}

	saving := int64(*p.ComparePrice - p.Price)

	return int((saving*100 + int64(*p.ComparePrice)/2) / int64(*p.ComparePrice))
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategorySlug string
	InStockOnly  bool
	FeaturedOnly bool
	MinPrice     *Money
	MaxPrice     *Money
	Offset       int
	Limit        int
}
