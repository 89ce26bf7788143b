package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// Ensure MembershipRepository implements MembershipRepositoryInterface
var _ MembershipRepositoryInterface = (*MembershipRepository)(nil)

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.OrganizationMembership) error {
	return r.db.Create(membership).Error
}

// GetByOrgAndUser retrieves the membership of a user in an organization
func (r *MembershipRepository) GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMembership, error) {
	var membership models.OrganizationMembership
	err := r.db.First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByOrganizationID retrieves all memberships of an organization with user details
func (r *MembershipRepository) ListByOrganizationID(orgID uuid.UUID) ([]models.OrganizationMembership, error) {
	var memberships []models.OrganizationMembership
	err := r.db.Preload("User").
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// UpdateRole updates the role of a member
func (r *MembershipRepository) UpdateRole(orgID, userID uuid.UUID, role models.MembershipRole) error {
	result := r.db.Model(&models.OrganizationMembership{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user's membership in an organization
func (r *MembershipRepository) Delete(orgID, userID uuid.UUID) error {
	result := r.db.Delete(&models.OrganizationMembership{}, "organization_id = ? AND user_id = ?", orgID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
