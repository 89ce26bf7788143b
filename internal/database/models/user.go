package models

// User represents an authenticated identity known to the system.
// Token issuance is handled by the external authenticator; this table is the
// local shadow that invitations and reviewer display names resolve against.
type User struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`

	// Relationships
	Memberships []OrganizationMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
