package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductService handles product-related operations
type ProductService struct {
	tx           repository.Transactor
	productRepo  repository.ProductRepository
	historyRepo  repository.PriceHistoryRepository
	categoryRepo repository.CategoryRepository
	taxSlabRepo  repository.TaxSlabRepository
}

// NewProductService creates a new product service
func NewProductService(
	tx repository.Transactor,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
	categoryRepo repository.CategoryRepository,
	taxSlabRepo repository.TaxSlabRepository,
) *ProductService {
	return &ProductService{
		tx:           tx,
		productRepo:  productRepo,
		historyRepo:  historyRepo,
		categoryRepo: categoryRepo,
		taxSlabRepo:  taxSlabRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name             string
	SKU              *string
	CategoryID       *uuid.UUID
	CurrentUnitPrice decimal.Decimal
	TaxSlabID        uuid.UUID
	IsActive         *bool
}

// CreateProduct creates a product and opens its price history
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.CurrentUnitPrice.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "current_unit_price", Message: "current_unit_price must not be negative"},
		})
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	var sku *string
	if input.SKU != nil && strings.TrimSpace(*input.SKU) != "" {
		trimmed := strings.TrimSpace(*input.SKU)
		sku = &trimmed
	}

	product := &entity.Product{
		Name:             strings.TrimSpace(input.Name),
		SKU:              sku,
		CategoryID:       input.CategoryID,
		CurrentUnitPrice: input.CurrentUnitPrice.Round(2),
		TaxSlabID:        input.TaxSlabID,
		IsActive:         active,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		slab, err := s.taxSlabRepo.GetByID(ctx, input.TaxSlabID)
		if err != nil {
			return err
		}
		if slab == nil {
			return apperror.NewNotFoundError("Tax slab")
		}

		if input.CategoryID != nil {
			category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return apperror.NewNotFoundError("Category")
			}
		}

		if err := s.productRepo.Create(ctx, product); err != nil {
			return err
		}

		return s.historyRepo.Create(ctx, &entity.ProductPriceHistory{
			ProductID: product.ID,
			UnitPrice: product.CurrentUnitPrice,
			TaxSlabID: product.TaxSlabID,
			ValidFrom: time.Now().UTC(),
		})
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperror.NewConstraintError("Product SKU already exists", err)
		}
		return nil, err
	}

	return s.GetProduct(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// PriceHistory returns the recorded prices of a product, newest first
func (s *ProductService) PriceHistory(ctx context.Context, id uuid.UUID) ([]entity.ProductPriceHistory, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByProduct(ctx, id)
}
