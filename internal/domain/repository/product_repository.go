package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs returns the products that exist among ids; missing ids are skipped.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// PriceHistoryRepository defines the interface for product price history operations
type PriceHistoryRepository interface {
	Create(ctx context.Context, history *entity.ProductPriceHistory) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.ProductPriceHistory, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
}

// TaxSlabRepository defines the interface for tax slab data operations
type TaxSlabRepository interface {
	Create(ctx context.Context, slab *entity.TaxSlab) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxSlab, error)
	GetByRate(ctx context.Context, rate decimal.Decimal) (*entity.TaxSlab, error)
	List(ctx context.Context) ([]entity.TaxSlab, error)
}
