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
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	FullName      string
	Phone         *string
	EmployeeCode  string
	HireDate      *time.Time
	Designation   *string
	UserAccountID *uuid.UUID
}

// CreateEmployee creates a new employee. Employee codes are unique.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	employee := &entity.Employee{
		FullName:      strings.TrimSpace(input.FullName),
		Phone:         input.Phone,
		EmployeeCode:  strings.TrimSpace(input.EmployeeCode),
		HireDate:      input.HireDate,
		Designation:   input.Designation,
		UserAccountID: input.UserAccountID,
		IsActive:      true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperror.NewConstraintError("Employee code already exists", err)
		}
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists employees with optional search on name or code
func (s *EmployeeService) ListEmployees(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Employee], error) {
	params.Validate()
	employees, total, err := s.employeeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}
