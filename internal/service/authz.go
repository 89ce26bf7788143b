package service

import (
	"errors"
	"fmt"

	"expense-portal-backend/internal/database/models"
	apperrors "expense-portal-backend/internal/errors"
	"expense-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// authorizer is the single membership guard shared by every org-scoped
// operation. It fails closed: an absent membership is unauthorized, and a
// lookup failure never grants access.
type authorizer struct {
	memberships repository.MembershipRepositoryInterface
}

func newAuthorizer(memberships repository.MembershipRepositoryInterface) *authorizer {
	return &authorizer{memberships: memberships}
}

// requireMember returns the caller's role in the organization, or
// ErrNotOrganizationMember when no membership exists.
func (a *authorizer) requireMember(orgID, userID uuid.UUID) (models.MembershipRole, error) {
	membership, err := a.memberships.GetByOrgAndUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrNotOrganizationMember
		}
		return "", fmt.Errorf("failed to check membership: %w", err)
	}
	return membership.Role, nil
}

// requireAdmin verifies the caller holds the ADMIN role. Non-members and
// non-admin members get the same message, which names the attempted action,
// e.g. "Only admins can create categories".
func (a *authorizer) requireAdmin(orgID, userID uuid.UUID, action string) error {
	membership, err := a.memberships.GetByOrgAndUser(orgID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if membership == nil || membership.Role != models.MembershipRoleAdmin {
		return apperrors.NewAuthorizationError("Only admins can " + action)
	}
	return nil
}
