package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PolicyRepository handles database operations for spending policies
type PolicyRepository struct {
	db *gorm.DB
}

// Ensure PolicyRepository implements PolicyRepositoryInterface
var _ PolicyRepositoryInterface = (*PolicyRepository)(nil)

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// Create creates a new policy
func (r *PolicyRepository) Create(policy *models.Policy) error {
	return r.db.Create(policy).Error
}

// GetByID retrieves a policy by ID
func (r *PolicyRepository) GetByID(id uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.First(&policy, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// ListByOrganizationID retrieves all policies of an organization
func (r *PolicyRepository) ListByOrganizationID(orgID uuid.UUID) ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Where("organization_id = ?", orgID).Order("created_at ASC").Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// FindUserPolicy retrieves the user-specific policy for a category, if any.
// The composite unique index on (organization_id, category_id, user_id)
// guarantees at most one row.
func (r *PolicyRepository) FindUserPolicy(orgID, userID, categoryID uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.First(&policy, "organization_id = ? AND category_id = ? AND user_id = ?", orgID, categoryID, userID).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// FindOrganizationPolicy retrieves the organization-wide policy for a category, if any
func (r *PolicyRepository) FindOrganizationPolicy(orgID, categoryID uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.First(&policy, "organization_id = ? AND category_id = ? AND user_id IS NULL", orgID, categoryID).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// Update updates a policy using a map of updates
func (r *PolicyRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Policy{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a policy
func (r *PolicyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Policy{}, "id = ?", id).Error
}
