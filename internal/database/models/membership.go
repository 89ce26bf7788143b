package models

import (
	"github.com/google/uuid"
)

// OrganizationMembership maps a user to an organization with a role.
// Every org-scoped operation authorizes against this table first.
type OrganizationMembership struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_membership" validate:"required"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_membership;index" validate:"required"`
	Role           MembershipRole `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMembership
func (OrganizationMembership) TableName() string {
	return "organization_memberships"
}
