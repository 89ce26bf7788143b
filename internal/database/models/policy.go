package models

import (
	"github.com/google/uuid"
)

// Policy represents a spending-limit rule scoped to a category, optionally
// narrowed to a single user. UserID nil means the policy is organization-wide.
// Resolution is deterministic: the composite unique index allows at most one
// policy per user and category, and a partial unique index on
// (organization_id, category_id) WHERE user_id IS NULL (created in the
// database package, since NULLs don't conflict here) allows at most one
// org-wide policy per category.
type Policy struct {
	BaseModel
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_policy_scope" validate:"required"`
	CategoryID     uuid.UUID    `json:"category_id" gorm:"type:uuid;not null;uniqueIndex:idx_policy_scope" validate:"required"`
	UserID         *uuid.UUID   `json:"user_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_policy_scope"`
	MaxAmount      int64        `json:"max_amount" gorm:"not null" validate:"required,gt=0"` // minor currency units
	Period         PolicyPeriod `json:"period" gorm:"type:varchar(20);not null;default:'MONTHLY'" validate:"required"`
	AutoApprove    bool         `json:"auto_approve" gorm:"not null;default:false"`

	// Relationships
	Organization Organization    `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Category     ExpenseCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	User         *User           `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Policy
func (Policy) TableName() string {
	return "policies"
}

// IsOrganizationWide reports whether the policy applies to all members
func (p *Policy) IsOrganizationWide() bool {
	return p.UserID == nil
}
