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

// PolicyService handles business logic for spending policies, including the
// resolution of the single policy applicable to a submission.
type PolicyService struct {
	repo         repository.PolicyRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
	authz        *authorizer
	validator    *validator.Validate
}

// NewPolicyService creates a new policy service
func NewPolicyService(
	repo repository.PolicyRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *PolicyService {
	return &PolicyService{
		repo:         repo,
		categoryRepo: categoryRepo,
		authz:        newAuthorizer(membershipRepo),
		validator:    validator,
	}
}

// CreatePolicyRequest represents the request to create a policy.
// A nil UserID creates an organization-wide policy.
type CreatePolicyRequest struct {
	OrganizationID uuid.UUID           `json:"organization_id" validate:"required"`
	CategoryID     uuid.UUID           `json:"category_id" validate:"required"`
	UserID         *uuid.UUID          `json:"user_id,omitempty"`
	MaxAmount      int64               `json:"max_amount" validate:"required,gt=0"`
	Period         models.PolicyPeriod `json:"period" validate:"required"`
	AutoApprove    bool                `json:"auto_approve"`
}

// UpdatePolicyRequest represents the request to update a policy's limit settings
type UpdatePolicyRequest struct {
	MaxAmount   int64               `json:"max_amount" validate:"required,gt=0"`
	Period      models.PolicyPeriod `json:"period" validate:"required"`
	AutoApprove bool                `json:"auto_approve"`
}

// PolicyResponse represents the response for policy operations
type PolicyResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrganizationID uuid.UUID           `json:"organization_id"`
	CategoryID     uuid.UUID           `json:"category_id"`
	UserID         *uuid.UUID          `json:"user_id,omitempty"`
	MaxAmount      int64               `json:"max_amount"`
	Period         models.PolicyPeriod `json:"period"`
	AutoApprove    bool                `json:"auto_approve"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// PolicyResolution carries the outcome of policy resolution: both candidate
// policies plus the one that applies. All fields may be nil; "no policy" is a
// valid outcome, not a failure.
type PolicyResolution struct {
	UserSpecificPolicy *models.Policy
	OrganizationPolicy *models.Policy
	Applicable         *models.Policy
}

// PolicyDebugResponse exposes a resolution for the policy debug endpoint
type PolicyDebugResponse struct {
	UserSpecificPolicy *PolicyResponse `json:"user_specific_policy"`
	OrganizationPolicy *PolicyResponse `json:"organization_policy"`
	SelectedPolicy     *PolicyResponse `json:"selected_policy"`
}

// resolveApplicablePolicy selects the policy governing (org, user, category).
// Precedence is absolute: a user-specific policy always overrides the
// organization-wide one, regardless of limits or flags.
func resolveApplicablePolicy(repo repository.PolicyRepositoryInterface, orgID, userID, categoryID uuid.UUID) (*PolicyResolution, error) {
	resolution := &PolicyResolution{}

	userPolicy, err := repo.FindUserPolicy(orgID, userID, categoryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user policy: %w", err)
	}
	resolution.UserSpecificPolicy = userPolicy

	orgPolicy, err := repo.FindOrganizationPolicy(orgID, categoryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up organization policy: %w", err)
	}
	resolution.OrganizationPolicy = orgPolicy

	if userPolicy != nil {
		resolution.Applicable = userPolicy
	} else {
		resolution.Applicable = orgPolicy
	}
	return resolution, nil
}

// Create creates a new policy. Admin only. The category must belong to the
// organization, and the (category, scope) pair must not already have a policy.
func (s *PolicyService) Create(callerID uuid.UUID, req *CreatePolicyRequest) (*PolicyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Period.IsValid() {
		return nil, apperrors.NewValidationError("period", "must be MONTHLY or YEARLY")
	}

	if err := s.authz.requireAdmin(req.OrganizationID, callerID, "create policies"); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(req.CategoryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}
	if category == nil || category.OrganizationID != req.OrganizationID {
		return nil, apperrors.ErrCategoryNotInOrganization
	}

	// Duplicate scope check ahead of the unique index for a clean error
	var existing *models.Policy
	if req.UserID != nil {
		existing, err = s.repo.FindUserPolicy(req.OrganizationID, *req.UserID, req.CategoryID)
	} else {
		existing, err = s.repo.FindOrganizationPolicy(req.OrganizationID, req.CategoryID)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing policy: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPolicyExists
	}

	policy := &models.Policy{
		OrganizationID: req.OrganizationID,
		CategoryID:     req.CategoryID,
		UserID:         req.UserID,
		MaxAmount:      req.MaxAmount,
		Period:         req.Period,
		AutoApprove:    req.AutoApprove,
	}
	if err := s.repo.Create(policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	return s.toResponse(policy), nil
}

// GetByID retrieves a policy; caller must be a member of the owning organization
func (s *PolicyService) GetByID(callerID, id uuid.UUID) (*PolicyResponse, error) {
	policy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	if _, err := s.authz.requireMember(policy.OrganizationID, callerID); err != nil {
		return nil, err
	}

	return s.toResponse(policy), nil
}

// List retrieves all policies of an organization; member only
func (s *PolicyService) List(callerID, orgID uuid.UUID) ([]PolicyResponse, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	policies, err := s.repo.ListByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	responses := make([]PolicyResponse, len(policies))
	for i := range policies {
		responses[i] = *s.toResponse(&policies[i])
	}
	return responses, nil
}

// Update updates a policy's limit settings. Admin only. Scope (category/user)
// is immutable; delete and recreate to change it.
func (s *PolicyService) Update(callerID, id uuid.UUID, req *UpdatePolicyRequest) (*PolicyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Period.IsValid() {
		return nil, apperrors.NewValidationError("period", "must be MONTHLY or YEARLY")
	}

	policy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	if err := s.authz.requireAdmin(policy.OrganizationID, callerID, "update policies"); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"max_amount":   req.MaxAmount,
		"period":       req.Period,
		"auto_approve": req.AutoApprove,
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload policy: %w", err)
	}
	return s.toResponse(updated), nil
}

// Delete deletes a policy. Admin only.
func (s *PolicyService) Delete(callerID, id uuid.UUID) error {
	policy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPolicyNotFound
		}
		return fmt.Errorf("failed to get policy: %w", err)
	}

	if err := s.authz.requireAdmin(policy.OrganizationID, callerID, "delete policies"); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	return nil
}

// Debug resolves the applicable policy for a target user and category and
// returns both candidates alongside the selection. Member only.
func (s *PolicyService) Debug(callerID, orgID, targetUserID, categoryID uuid.UUID) (*PolicyDebugResponse, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}
	if category == nil || category.OrganizationID != orgID {
		return nil, apperrors.ErrCategoryNotInOrganization
	}

	resolution, err := resolveApplicablePolicy(s.repo, orgID, targetUserID, categoryID)
	if err != nil {
		return nil, err
	}

	return &PolicyDebugResponse{
		UserSpecificPolicy: s.toOptionalResponse(resolution.UserSpecificPolicy),
		OrganizationPolicy: s.toOptionalResponse(resolution.OrganizationPolicy),
		SelectedPolicy:     s.toOptionalResponse(resolution.Applicable),
	}, nil
}

func (s *PolicyService) toResponse(policy *models.Policy) *PolicyResponse {
	return &PolicyResponse{
		ID:             policy.ID,
		OrganizationID: policy.OrganizationID,
		CategoryID:     policy.CategoryID,
		UserID:         policy.UserID,
		MaxAmount:      policy.MaxAmount,
		Period:         policy.Period,
		AutoApprove:    policy.AutoApprove,
		CreatedAt:      policy.CreatedAt,
		UpdatedAt:      policy.UpdatedAt,
	}
}

func (s *PolicyService) toOptionalResponse(policy *models.Policy) *PolicyResponse {
	if policy == nil {
		return nil
	}
	return s.toResponse(policy)
}
