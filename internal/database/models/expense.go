package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a submitted reimbursement request. Amounts are integer
// minor currency units so limit comparisons are exact. Status is fixed at
// creation time by the adjudicator; no later transition exists.
type Expense struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID     uuid.UUID     `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount         int64         `json:"amount" gorm:"not null" validate:"required,gt=0"`
	Date           time.Time     `json:"date" gorm:"not null" validate:"required"`
	Description    string        `json:"description" gorm:"not null;size:500" validate:"required,min=1,max=500"`
	Status         ExpenseStatus `json:"status" gorm:"type:varchar(20);not null;default:'SUBMITTED'"`

	// Relationships
	Organization Organization    `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User            `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category     ExpenseCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews      []ExpenseReview `json:"reviews,omitempty" gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
