package models

import (
	"github.com/google/uuid"
)

// Group represents a hierarchical team/department grouping within an
// organization. ParentGroupID nil means the group is a root. Parents must
// belong to the same organization and the hierarchy must stay acyclic; both
// are enforced at the service layer.
type Group struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    string     `json:"description" gorm:"size:500" validate:"max=500"`
	ParentGroupID  *uuid.UUID `json:"parent_group_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Organization Organization      `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ParentGroup  *Group            `json:"parent_group,omitempty" gorm:"foreignKey:ParentGroupID;constraint:OnDelete:SET NULL"`
	ChildGroups  []Group           `json:"child_groups,omitempty" gorm:"foreignKey:ParentGroupID"`
	Members      []GroupMembership `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// GroupMembership maps a user into a group. The user must already hold an
// organization membership in the group's organization.
type GroupMembership struct {
	BaseModel
	GroupID uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_membership" validate:"required"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_membership" validate:"required"`

	// Relationships
	Group Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMembership
func (GroupMembership) TableName() string {
	return "group_memberships"
}
