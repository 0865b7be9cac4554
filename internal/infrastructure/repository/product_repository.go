package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/internal/infrastructure/database"
	"github.com/sangkips/hotel-billing-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	err := conn(ctx, r.db).Omit("Category", "TaxSlab").Create(product).Error
	return database.TranslateError(err)
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).
		Preload("Category").
		Preload("TaxSlab").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []entity.Product
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := conn(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		like := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like)
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Preload("TaxSlab").
		Order("name ASC").
		Find(&products).Error

	return products, total, err
}

type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository creates a new product price history repository
func NewPriceHistoryRepository(db *gorm.DB) domainRepo.PriceHistoryRepository {
	return &priceHistoryRepository{db: db}
}

func (r *priceHistoryRepository) Create(ctx context.Context, history *entity.ProductPriceHistory) error {
	return conn(ctx, r.db).Omit("Product").Create(history).Error
}

func (r *priceHistoryRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.ProductPriceHistory, error) {
	var rows []entity.ProductPriceHistory
	err := conn(ctx, r.db).
		Where("product_id = ?", productID).
		Order("valid_from DESC").
		Find(&rows).Error
	return rows, err
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return database.TranslateError(conn(ctx, r.db).Create(category).Error)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := conn(ctx, r.db).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := conn(ctx, r.db).Order("name ASC").Find(&categories).Error
	return categories, err
}

type taxSlabRepository struct {
	db *gorm.DB
}

// NewTaxSlabRepository creates a new tax slab repository
func NewTaxSlabRepository(db *gorm.DB) domainRepo.TaxSlabRepository {
	return &taxSlabRepository{db: db}
}

func (r *taxSlabRepository) Create(ctx context.Context, slab *entity.TaxSlab) error {
	return database.TranslateError(conn(ctx, r.db).Create(slab).Error)
}

func (r *taxSlabRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxSlab, error) {
	var slab entity.TaxSlab
	err := conn(ctx, r.db).First(&slab, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &slab, err
}

func (r *taxSlabRepository) GetByRate(ctx context.Context, rate decimal.Decimal) (*entity.TaxSlab, error) {
	var slab entity.TaxSlab
	err := conn(ctx, r.db).Where("rate = ?", rate.Round(2)).First(&slab).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &slab, err
}

func (r *taxSlabRepository) List(ctx context.Context) ([]entity.TaxSlab, error) {
	var slabs []entity.TaxSlab
	err := conn(ctx, r.db).Order("rate ASC").Find(&slabs).Error
	return slabs, err
}
