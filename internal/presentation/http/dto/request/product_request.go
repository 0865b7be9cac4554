package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name             string           `json:"name" binding:"required,min=2,max=255"`
	SKU              *string          `json:"sku" binding:"omitempty,max=100"`
	CategoryID       *uuid.UUID       `json:"category_id"`
	CurrentUnitPrice *decimal.Decimal `json:"current_unit_price" binding:"required"`
	TaxSlabID        uuid.UUID        `json:"tax_slab_id" binding:"required"`
	IsActive         *bool            `json:"is_active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	ActiveOnly bool   `form:"active_only"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description"`
}

// EnsureTaxSlabRequest represents a get-or-create tax slab request
type EnsureTaxSlabRequest struct {
	Rate *decimal.Decimal `json:"rate" binding:"required"`
	Name string           `json:"name" binding:"omitempty,max=100"`
}
