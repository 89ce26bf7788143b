package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Memberships []OrganizationMembership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Categories  []ExpenseCategory        `json:"categories,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Policies    []Policy                 `json:"policies,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Expenses    []Expense                `json:"expenses,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Groups      []Group                  `json:"groups,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Messages    []Message                `json:"messages,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
