package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups and group memberships
type GroupRepository struct {
	db *gorm.DB
}

// Ensure GroupRepository implements GroupRepositoryInterface
var _ GroupRepositoryInterface = (*GroupRepository)(nil)

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetWithMembers retrieves a group with its members and their user details
func (r *GroupRepository) GetWithMembers(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Members").Preload("Members.User").First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListByOrganizationID retrieves all groups of an organization with members, ordered by name
func (r *GroupRepository) ListByOrganizationID(orgID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Preload("Members").Preload("Members.User").
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Update updates a group using a map of updates
func (r *GroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteAndReRootChildren deletes a group and promotes its children to roots
// in the same transaction, so no dangling parent references are left behind.
func (r *GroupRepository) DeleteAndReRootChildren(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Group{}).
			Where("parent_group_id = ?", id).
			Update("parent_group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, "id = ?", id).Error
	})
}

// AddMember creates a group membership
func (r *GroupRepository) AddMember(membership *models.GroupMembership) error {
	return r.db.Create(membership).Error
}

// GetMembership retrieves a user's membership in a group
func (r *GroupRepository) GetMembership(groupID, userID uuid.UUID) (*models.GroupMembership, error) {
	var membership models.GroupMembership
	err := r.db.First(&membership, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// RemoveMember removes a user from a group
func (r *GroupRepository) RemoveMember(groupID, userID uuid.UUID) error {
	result := r.db.Delete(&models.GroupMembership{}, "group_id = ? AND user_id = ?", groupID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
