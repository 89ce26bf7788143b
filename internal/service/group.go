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

// GroupService maintains the per-organization group tree
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	authz     *authorizer
	validator *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(
	repo repository.GroupRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		repo:      repo,
		authz:     newAuthorizer(membershipRepo),
		validator: validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	Description    string     `json:"description" validate:"max=500"`
	ParentGroupID  *uuid.UUID `json:"parent_group_id,omitempty"`
}

// UpdateGroupRequest represents the request to update a group. A nil
// ParentGroupID leaves the parent unchanged; ClearParent promotes the group
// to a root.
type UpdateGroupRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	Description   string     `json:"description" validate:"max=500"`
	ParentGroupID *uuid.UUID `json:"parent_group_id,omitempty"`
	ClearParent   bool       `json:"clear_parent,omitempty"`
}

// AddGroupMemberRequest represents the request to add a user to a group
type AddGroupMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// GroupMemberResponse represents one group member
type GroupMemberResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID             uuid.UUID             `json:"id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	ParentGroupID  *uuid.UUID            `json:"parent_group_id,omitempty"`
	Members        []GroupMemberResponse `json:"members,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// GroupTreeNode is a group with its nested children, for the hierarchy view
type GroupTreeNode struct {
	GroupResponse
	Children []*GroupTreeNode `json:"children"`
}

// Create creates a group. Admin only. A parent, when given, must belong to
// the same organization.
func (s *GroupService) Create(callerID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.authz.requireAdmin(req.OrganizationID, callerID, "create groups"); err != nil {
		return nil, err
	}

	if req.ParentGroupID != nil {
		parent, err := s.repo.GetByID(*req.ParentGroupID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to verify parent group: %w", err)
		}
		if parent == nil || parent.OrganizationID != req.OrganizationID {
			return nil, apperrors.ErrParentGroupInvalid
		}
	}

	group := &models.Group{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		ParentGroupID:  req.ParentGroupID,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetByID retrieves a group with its members; member of the owning organization only
func (s *GroupService) GetByID(callerID, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if _, err := s.authz.requireMember(group.OrganizationID, callerID); err != nil {
		return nil, err
	}

	return s.toResponse(group), nil
}

// List retrieves all groups of an organization ordered by name; member only
func (s *GroupService) List(callerID, orgID uuid.UUID) ([]GroupResponse, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	groups, err := s.repo.ListByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *s.toResponse(&groups[i])
	}
	return responses, nil
}

// Update updates a group and optionally re-parents it. Admin only. Re-parenting
// rejects self-parenting, cross-organization parents, and cycles.
func (s *GroupService) Update(callerID, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.authz.requireAdmin(group.OrganizationID, callerID, "update groups"); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}

	switch {
	case req.ClearParent:
		updates["parent_group_id"] = nil
	case req.ParentGroupID != nil:
		if err := s.checkReParent(group, *req.ParentGroupID); err != nil {
			return nil, err
		}
		updates["parent_group_id"] = *req.ParentGroupID
	}

	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	updated, err := s.repo.GetWithMembers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload group: %w", err)
	}
	return s.toResponse(updated), nil
}

// checkReParent validates a proposed parent: same organization, not the group
// itself, and not one of the group's descendants. The ancestor walk keeps a
// visited set so it terminates even if stored data already contains a cycle.
func (s *GroupService) checkReParent(group *models.Group, parentID uuid.UUID) error {
	if parentID == group.ID {
		return apperrors.ErrGroupSelfParent
	}

	parent, err := s.repo.GetByID(parentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to verify parent group: %w", err)
	}
	if parent == nil || parent.OrganizationID != group.OrganizationID {
		return apperrors.ErrParentGroupInvalid
	}

	visited := map[uuid.UUID]bool{parent.ID: true}
	current := parent
	for current.ParentGroupID != nil {
		ancestorID := *current.ParentGroupID
		if ancestorID == group.ID {
			return apperrors.ErrGroupCycle
		}
		if visited[ancestorID] {
			break
		}
		visited[ancestorID] = true

		ancestor, err := s.repo.GetByID(ancestorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break // dangling reference terminates the walk
			}
			return fmt.Errorf("failed to walk group ancestors: %w", err)
		}
		current = ancestor
	}
	return nil
}

// Delete deletes a group; its children are promoted to roots. Admin only.
func (s *GroupService) Delete(callerID, id uuid.UUID) error {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.authz.requireAdmin(group.OrganizationID, callerID, "delete groups"); err != nil {
		return err
	}

	if err := s.repo.DeleteAndReRootChildren(id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// AddMember adds an organization member to a group. Admin only; the target
// user must already belong to the organization.
func (s *GroupService) AddMember(callerID, groupID uuid.UUID, req *AddGroupMemberRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.repo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.authz.requireAdmin(group.OrganizationID, callerID, "add members to groups"); err != nil {
		return nil, err
	}

	if _, err := s.authz.requireMember(group.OrganizationID, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotOrganizationMember) {
			return nil, apperrors.ErrUserNotInOrganization
		}
		return nil, err
	}

	existing, err := s.repo.GetMembership(groupID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupMembershipExists
	}

	membership := &models.GroupMembership{
		GroupID: groupID,
		UserID:  req.UserID,
	}
	if err := s.repo.AddMember(membership); err != nil {
		return nil, fmt.Errorf("failed to add group member: %w", err)
	}

	updated, err := s.repo.GetWithMembers(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload group: %w", err)
	}
	return s.toResponse(updated), nil
}

// RemoveMember removes a user from a group. Admin only.
func (s *GroupService) RemoveMember(callerID, groupID, userID uuid.UUID) error {
	group, err := s.repo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.authz.requireAdmin(group.OrganizationID, callerID, "remove members from groups"); err != nil {
		return err
	}

	if err := s.repo.RemoveMember(groupID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupMembershipNotFound
		}
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	return nil
}

// GetHierarchy builds the organization's group forest from the flat list.
// Groups whose parent cannot be found are promoted to root level.
func (s *GroupService) GetHierarchy(callerID, orgID uuid.UUID) ([]*GroupTreeNode, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	groups, err := s.repo.ListByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	nodes := make(map[uuid.UUID]*GroupTreeNode, len(groups))
	for i := range groups {
		nodes[groups[i].ID] = &GroupTreeNode{
			GroupResponse: *s.toResponse(&groups[i]),
			Children:      []*GroupTreeNode{},
		}
	}

	roots := []*GroupTreeNode{}
	for i := range groups {
		node := nodes[groups[i].ID]
		if groups[i].ParentGroupID != nil {
			if parent, ok := nodes[*groups[i].ParentGroupID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	members := make([]GroupMemberResponse, len(group.Members))
	for i := range group.Members {
		m := &group.Members[i]
		members[i] = GroupMemberResponse{
			UserID: m.UserID,
			Name:   m.User.Name,
			Email:  m.User.Email,
		}
	}
	return &GroupResponse{
		ID:             group.ID,
		OrganizationID: group.OrganizationID,
		Name:           group.Name,
		Description:    group.Description,
		ParentGroupID:  group.ParentGroupID,
		Members:        members,
		CreatedAt:      group.CreatedAt,
		UpdatedAt:      group.UpdatedAt,
	}
}
