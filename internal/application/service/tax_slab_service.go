package service

import (
	"context"
	"strings"

	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/shopspring/decimal"
)

// TaxSlabService handles tax slab operations
type TaxSlabService struct {
	taxSlabRepo repository.TaxSlabRepository
}

// NewTaxSlabService creates a new tax slab service
func NewTaxSlabService(taxSlabRepo repository.TaxSlabRepository) *TaxSlabService {
	return &TaxSlabService{taxSlabRepo: taxSlabRepo}
}

// EnsureTaxSlabInput represents the create tax slab input
type EnsureTaxSlabInput struct {
	Rate decimal.Decimal
	Name string
}

// EnsureTaxSlab returns the slab with the given rate, creating it when absent.
// The boolean reports whether a new slab was created.
func (s *TaxSlabService) EnsureTaxSlab(ctx context.Context, input *EnsureTaxSlabInput) (*entity.TaxSlab, bool, error) {
	if input.Rate.IsNegative() || input.Rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, false, apperror.NewValidationError([]apperror.FieldError{
			{Field: "rate", Message: "rate must be between 0 and 100"},
		})
	}
	rate := money.Round2(input.Rate)

	existing, err := s.taxSlabRepo.GetByRate(ctx, rate)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = money.Format(rate) + "%"
	}

	slab := &entity.TaxSlab{Rate: rate, Name: name}
	if err := s.taxSlabRepo.Create(ctx, slab); err != nil {
		if repository.IsDuplicateKey(err) {
			// created concurrently
			existing, getErr := s.taxSlabRepo.GetByRate(ctx, rate)
			if getErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	return slab, true, nil
}

// ListTaxSlabs lists all tax slabs ordered by rate
func (s *TaxSlabService) ListTaxSlabs(ctx context.Context) ([]entity.TaxSlab, error) {
	return s.taxSlabRepo.List(ctx)
}
