package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a member of staff who can be attached to invoices
type Employee struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FullName      string     `gorm:"size:255;not null" json:"full_name"`
	Phone         *string    `gorm:"size:30" json:"phone,omitempty"`
	EmployeeCode  string     `gorm:"size:100;uniqueIndex;not null" json:"employee_code"`
	HireDate      *time.Time `gorm:"type:date" json:"hire_date,omitempty"`
	Designation   *string    `gorm:"size:100" json:"designation,omitempty"`
	UserAccountID *uuid.UUID `gorm:"type:uuid;index" json:"user_account_id,omitempty"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
