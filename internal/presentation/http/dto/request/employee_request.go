package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	FullName      string     `json:"full_name" binding:"required,min=2,max=255"`
	Phone         *string    `json:"phone" binding:"omitempty,max=30"`
	EmployeeCode  string     `json:"employee_code" binding:"required,max=100"`
	HireDate      *time.Time `json:"hire_date"`
	Designation   *string    `json:"designation" binding:"omitempty,max=100"`
	UserAccountID *uuid.UUID `json:"user_account_id"`
}
