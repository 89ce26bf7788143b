package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// Ensure OrganizationRepository implements OrganizationRepositoryInterface
var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithAdmin creates an organization and its creator's ADMIN membership
// in a single transaction.
func (r *OrganizationRepository) CreateWithAdmin(org *models.Organization, creatorID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		membership := &models.OrganizationMembership{
			OrganizationID: org.ID,
			UserID:         creatorID,
			Role:           models.MembershipRoleAdmin,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByUserID retrieves all organizations the user holds a membership in
func (r *OrganizationRepository) ListByUserID(userID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.
		Joins("JOIN organization_memberships ON organization_memberships.organization_id = organizations.id").
		Where("organization_memberships.user_id = ?", userID).
		Order("organizations.name ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update updates an organization using a map of updates
func (r *OrganizationRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Organization{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes an organization; owned entities cascade at the schema level
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}
