package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for expenses and their audit trail
type ExpenseRepository struct {
	db *gorm.DB
}

// Ensure ExpenseRepository implements ExpenseRepositoryInterface
var _ ExpenseRepositoryInterface = (*ExpenseRepository)(nil)

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// CreateWithReview persists an expense and its first audit review in a single
// transaction. An expense must never be visible without its audit entry.
func (r *ExpenseRepository) CreateWithReview(expense *models.Expense, review *models.ExpenseReview) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return err
		}
		review.ExpenseID = expense.ID
		return tx.Create(review).Error
	})
}

// GetByID retrieves an expense by ID with category and submitter
func (r *ExpenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.Preload("Category").Preload("User").First(&expense, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetWithReviews retrieves an expense with its audit trail ordered oldest first
func (r *ExpenseRepository) GetWithReviews(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.
		Preload("Category").
		Preload("User").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("expense_reviews.created_at ASC")
		}).
		Preload("Reviews.Reviewer").
		First(&expense, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListByOrganizationID retrieves organization expenses newest first, optionally
// filtered to a single submitter.
func (r *ExpenseRepository) ListByOrganizationID(orgID uuid.UUID, userID *uuid.UUID) ([]models.Expense, error) {
	query := r.db.Preload("Category").Preload("User").Where("organization_id = ?", orgID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var expenses []models.Expense
	err := query.Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListSubmitted retrieves expenses awaiting review, oldest first (FIFO queue)
func (r *ExpenseRepository) ListSubmitted(orgID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Preload("Category").Preload("User").
		Where("organization_id = ? AND status = ?", orgID, models.ExpenseStatusSubmitted).
		Order("created_at ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
