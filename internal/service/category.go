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

// CategoryService handles business logic for expense categories
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	authz     *authorizer
	validator *validator.Validate
}

// NewCategoryService creates a new category service
func NewCategoryService(
	repo repository.CategoryRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *CategoryService {
	return &CategoryService{
		repo:      repo,
		authz:     newAuthorizer(membershipRepo),
		validator: validator,
	}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
	Description    string    `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest represents the request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CategoryResponse represents the response for category operations
type CategoryResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Create creates a new category. Admin only. Names are unique per organization.
func (s *CategoryService) Create(callerID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.authz.requireAdmin(req.OrganizationID, callerID, "create categories"); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(req.OrganizationID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.ExpenseCategory{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return s.toResponse(category), nil
}

// GetByID retrieves a category; caller must be a member of the owning organization
func (s *CategoryService) GetByID(callerID, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if _, err := s.authz.requireMember(category.OrganizationID, callerID); err != nil {
		return nil, err
	}

	return s.toResponse(category), nil
}

// List retrieves all categories of an organization ordered by name; member only
func (s *CategoryService) List(callerID, orgID uuid.UUID) ([]CategoryResponse, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	categories, err := s.repo.ListByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *s.toResponse(&categories[i])
	}
	return responses, nil
}

// Update updates a category. Admin only; the new name must stay unique in the organization.
func (s *CategoryService) Update(callerID, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if err := s.authz.requireAdmin(category.OrganizationID, callerID, "update categories"); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(category.OrganizationID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.ErrCategoryExists
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload category: %w", err)
	}
	return s.toResponse(updated), nil
}

// Delete deletes a category. Admin only. Deletion is restricted while
// policies or expenses still reference the category.
func (s *CategoryService) Delete(callerID, id uuid.UUID) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	if err := s.authz.requireAdmin(category.OrganizationID, callerID, "delete categories"); err != nil {
		return err
	}

	references, err := s.repo.CountReferences(id)
	if err != nil {
		return fmt.Errorf("failed to count category references: %w", err)
	}
	if references > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *CategoryService) toResponse(category *models.ExpenseCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:             category.ID,
		OrganizationID: category.OrganizationID,
		Name:           category.Name,
		Description:    category.Description,
		CreatedAt:      category.CreatedAt,
		UpdatedAt:      category.UpdatedAt,
	}
}
