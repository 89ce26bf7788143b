package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithAdmin(org *models.Organization, creatorID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	ListByUserID(userID uuid.UUID) ([]models.Organization, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// MembershipRepositoryInterface defines the interface for organization membership operations
type MembershipRepositoryInterface interface {
	Create(membership *models.OrganizationMembership) error
	GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMembership, error)
	ListByOrganizationID(orgID uuid.UUID) ([]models.OrganizationMembership, error)
	UpdateRole(orgID, userID uuid.UUID, role models.MembershipRole) error
	Delete(orgID, userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the interface for expense category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.ExpenseCategory) error
	GetByID(id uuid.UUID) (*models.ExpenseCategory, error)
	GetByName(orgID uuid.UUID, name string) (*models.ExpenseCategory, error)
	ListByOrganizationID(orgID uuid.UUID) ([]models.ExpenseCategory, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	CountReferences(categoryID uuid.UUID) (int64, error)
}

// PolicyRepositoryInterface defines the interface for policy repository operations
type PolicyRepositoryInterface interface {
	Create(policy *models.Policy) error
	GetByID(id uuid.UUID) (*models.Policy, error)
	ListByOrganizationID(orgID uuid.UUID) ([]models.Policy, error)
	FindUserPolicy(orgID, userID, categoryID uuid.UUID) (*models.Policy, error)
	FindOrganizationPolicy(orgID, categoryID uuid.UUID) (*models.Policy, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// ExpenseRepositoryInterface defines the interface for expense repository operations
type ExpenseRepositoryInterface interface {
	CreateWithReview(expense *models.Expense, review *models.ExpenseReview) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetWithReviews(id uuid.UUID) (*models.Expense, error)
	ListByOrganizationID(orgID uuid.UUID, userID *uuid.UUID) ([]models.Expense, error)
	ListSubmitted(orgID uuid.UUID) ([]models.Expense, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetWithMembers(id uuid.UUID) (*models.Group, error)
	ListByOrganizationID(orgID uuid.UUID) ([]models.Group, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	DeleteAndReRootChildren(id uuid.UUID) error
	AddMember(membership *models.GroupMembership) error
	GetMembership(groupID, userID uuid.UUID) (*models.GroupMembership, error)
	RemoveMember(groupID, userID uuid.UUID) error
}

// MessageRepositoryInterface defines the interface for message board repository operations
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	ListByOrganizationID(orgID uuid.UUID) ([]models.Message, error)
}
