package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for expense categories
type CategoryRepository struct {
	db *gorm.DB
}

// Ensure CategoryRepository implements CategoryRepositoryInterface
var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.ExpenseCategory) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.ExpenseCategory, error) {
	var category models.ExpenseCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by name within an organization
func (r *CategoryRepository) GetByName(orgID uuid.UUID, name string) (*models.ExpenseCategory, error) {
	var category models.ExpenseCategory
	err := r.db.First(&category, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByOrganizationID retrieves all categories of an organization ordered by name
func (r *CategoryRepository) ListByOrganizationID(orgID uuid.UUID) ([]models.ExpenseCategory, error) {
	var categories []models.ExpenseCategory
	err := r.db.Where("organization_id = ?", orgID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update updates a category using a map of updates
func (r *CategoryRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.ExpenseCategory{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a category
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ExpenseCategory{}, "id = ?", id).Error
}

// CountReferences counts policies and expenses still referencing the category.
// Used to restrict deletion of categories that are in use.
func (r *CategoryRepository) CountReferences(categoryID uuid.UUID) (int64, error) {
	var policies int64
	if err := r.db.Model(&models.Policy{}).Where("category_id = ?", categoryID).Count(&policies).Error; err != nil {
		return 0, err
	}
	var expenses int64
	if err := r.db.Model(&models.Expense{}).Where("category_id = ?", categoryID).Count(&expenses).Error; err != nil {
		return 0, err
	}
	return policies + expenses, nil
}
