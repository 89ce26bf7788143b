package models

import (
	"github.com/google/uuid"
)

// ExpenseReview is an append-only audit entry recording a status decision and
// its rationale. Exactly one entry is written alongside every expense creation.
type ExpenseReview struct {
	BaseModel
	ExpenseID  uuid.UUID     `json:"expense_id" gorm:"type:uuid;not null;index" validate:"required"`
	ReviewerID uuid.UUID     `json:"reviewer_id" gorm:"type:uuid;not null" validate:"required"`
	Status     ExpenseStatus `json:"status" gorm:"type:varchar(20);not null"`
	Comment    string        `json:"comment" gorm:"size:500"`

	// Relationships
	Expense  Expense `json:"expense,omitempty" gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
	Reviewer User    `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

// TableName returns the table name for ExpenseReview
func (ExpenseReview) TableName() string {
	return "expense_reviews"
}
