package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Money columns hold minor units.
type ProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CategorySlug      string    `gorm:"type:varchar(100);not null;index:idx_products_on_category"`
	Name              string    `gorm:"type:varchar(200);not null"`
	Slug              string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	SKU               string    `gorm:"column:sku;type:varchar(50);not null;uniqueIndex"`
	Description       string    `gorm:"type:text"`
	Material          string    `gorm:"type:varchar(50)"`
	PriceCents        int64     `gorm:"not null;check:chk_products_price,price_cents >= 0"`
	ComparePriceCents *int64
	TrackInventory    bool `gorm:"not null;default:true"`
	StockQuantity     int  `gorm:"not null;default:0;check:chk_products_stock,stock_quantity >= 0"`
	LowStockThreshold int  `gorm:"not null;default:5"`
	WeightGrams       *int
	IsActive          bool `gorm:"not null;default:true;index:idx_products_on_active"`
	IsFeatured        bool `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// StockMovementModel mirrors the append-only 'stock_movements' ledger.
type StockMovementModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index:idx_stock_movements_on_product"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Change    int        `gorm:"not null"`
	Reason    string     `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time  `gorm:"index:idx_stock_movements_on_product,sort:desc"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (StockMovementModel) TableName() string {
	return "stock_movements"
}
