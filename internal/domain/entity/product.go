package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable menu item
type Product struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SKU              *string         `gorm:"column:sku;size:100;uniqueIndex" json:"sku,omitempty"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CurrentUnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"current_unit_price"`
	TaxSlabID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"tax_slab_id"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	TaxSlab  *TaxSlab  `gorm:"foreignKey:TaxSlabID" json:"tax_slab,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductPriceHistory keeps the price a product had over a period
type ProductPriceHistory struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TaxSlabID uuid.UUID       `gorm:"type:uuid;not null" json:"tax_slab_id"`
	ValidFrom time.Time       `gorm:"not null" json:"valid_from"`
	ValidTo   *time.Time      `json:"valid_to,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate generates a UUID before creating a new price history row
func (h *ProductPriceHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductPriceHistory model
func (ProductPriceHistory) TableName() string {
	return "product_price_history"
}

// Category groups products
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// TaxSlab is a named tax rate in percent
type TaxSlab struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Rate      decimal.Decimal `gorm:"type:decimal(5,2);not null;uniqueIndex" json:"rate"`
	Name      string          `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new tax slab
func (t *TaxSlab) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxSlab model
func (TaxSlab) TableName() string {
	return "tax_slabs"
}
