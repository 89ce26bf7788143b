package service

import (
	"errors"
	"fmt"
	"time"

	"expense-portal-backend/internal/database/models"
	apperrors "expense-portal-backend/internal/errors"
	"expense-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations and their memberships
type OrganizationService struct {
	repo           repository.OrganizationRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	authz          *authorizer
	validator      *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:           repo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		authz:          newAuthorizer(membershipRepo),
		validator:      validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateOrganizationRequest represents the request to rename an organization
type UpdateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// InviteUserRequest represents the request to invite a user by email
type InviteUserRequest struct {
	Email string                `json:"email" validate:"required,email"`
	Role  models.MembershipRole `json:"role" validate:"required"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role models.MembershipRole `json:"role" validate:"required"`
}

// OrganizationResponse represents the response for organization operations.
// CurrentUserRole is the caller's own role, when loaded.
type OrganizationResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	CurrentUserRole *models.MembershipRole `json:"current_user_role,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// MemberResponse represents one organization member
type MemberResponse struct {
	UserID   uuid.UUID             `json:"user_id"`
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Role     models.MembershipRole `json:"role"`
	JoinedAt time.Time             `json:"joined_at"`
}

// Create creates an organization; the creator becomes its first ADMIN member
// in the same transaction.
func (s *OrganizationService) Create(callerID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &models.Organization{Name: req.Name}
	if err := s.repo.CreateWithAdmin(org, callerID); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	role := models.MembershipRoleAdmin
	resp := s.toResponse(org)
	resp.CurrentUserRole = &role
	return resp, nil
}

// List retrieves the organizations the caller is a member of
func (s *OrganizationService) List(callerID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.repo.ListByUserID(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}
	return responses, nil
}

// GetByID retrieves an organization including the caller's role; member only
func (s *OrganizationService) GetByID(callerID, orgID uuid.UUID) (*OrganizationResponse, error) {
	role, err := s.authz.requireMember(orgID, callerID)
	if err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	resp := s.toResponse(org)
	resp.CurrentUserRole = &role
	return resp, nil
}

// Update renames an organization. Admin only.
func (s *OrganizationService) Update(callerID, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.authz.requireAdmin(orgID, callerID, "update the organization"); err != nil {
		return nil, err
	}

	if err := s.repo.Update(orgID, map[string]interface{}{"name": req.Name}); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload organization: %w", err)
	}
	return s.toResponse(org), nil
}

// ListMembers retrieves all members of an organization; member only
func (s *OrganizationService) ListMembers(callerID, orgID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.ListByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]MemberResponse, len(memberships))
	for i := range memberships {
		m := &memberships[i]
		members[i] = MemberResponse{
			UserID:   m.UserID,
			Name:     m.User.Name,
			Email:    m.User.Email,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		}
	}
	return members, nil
}

// InviteUser adds an existing user to the organization by email. Admin only.
// Unknown emails are a not-found error; existing members are a conflict.
func (s *OrganizationService) InviteUser(callerID, orgID uuid.UUID, req *InviteUserRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be ADMIN or MEMBER")
	}

	if err := s.authz.requireAdmin(orgID, callerID, "invite users"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	existing, err := s.membershipRepo.GetByOrgAndUser(orgID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMembershipExists
	}

	membership := &models.OrganizationMembership{
		OrganizationID: orgID,
		UserID:         user.ID,
		Role:           req.Role,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return &MemberResponse{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     membership.Role,
		JoinedAt: membership.CreatedAt,
	}, nil
}

// UpdateMemberRole changes a member's role. Admin only.
func (s *OrganizationService) UpdateMemberRole(callerID, orgID, memberUserID uuid.UUID, req *UpdateMemberRoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return apperrors.NewValidationError("role", "must be ADMIN or MEMBER")
	}

	if err := s.authz.requireAdmin(orgID, callerID, "change member roles"); err != nil {
		return err
	}

	if err := s.membershipRepo.UpdateRole(orgID, memberUserID, req.Role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to update member role: %w", err)
	}
	return nil
}

// RemoveMember removes a user from the organization. Admin only; admins
// cannot remove themselves.
func (s *OrganizationService) RemoveMember(callerID, orgID, memberUserID uuid.UUID) error {
	if err := s.authz.requireAdmin(orgID, callerID, "remove members"); err != nil {
		return err
	}

	if memberUserID == callerID {
		return apperrors.ErrSelfRemoval
	}

	if err := s.membershipRepo.Delete(orgID, memberUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
