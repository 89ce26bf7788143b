package models

import (
	"github.com/google/uuid"
)

// Message is an entry on the organization-scoped message board. Append-only.
type Message struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null" validate:"required"`
	Content        string    `json:"content" gorm:"not null;size:1000" validate:"required,min=1,max=1000"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Author       User         `json:"author,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
