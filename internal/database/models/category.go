package models

import (
	"github.com/google/uuid"
)

// ExpenseCategory represents a named, organization-scoped expense category
type ExpenseCategory struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_category_name" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_org_category_name" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ExpenseCategory
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}
