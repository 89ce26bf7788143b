package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(callerID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	List(callerID uuid.UUID) ([]OrganizationResponse, error)
	GetByID(callerID, id uuid.UUID) (*OrganizationResponse, error)
	Update(callerID, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	ListMembers(callerID, orgID uuid.UUID) ([]MemberResponse, error)
	InviteUser(callerID, orgID uuid.UUID, req *InviteUserRequest) (*MemberResponse, error)
	UpdateMemberRole(callerID, orgID, memberUserID uuid.UUID, req *UpdateMemberRoleRequest) error
	RemoveMember(callerID, orgID, memberUserID uuid.UUID) error
}

// CategoryServiceInterface defines the interface for expense category service
type CategoryServiceInterface interface {
	Create(callerID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error)
	GetByID(callerID, id uuid.UUID) (*CategoryResponse, error)
	List(callerID, orgID uuid.UUID) ([]CategoryResponse, error)
	Update(callerID, id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error)
	Delete(callerID, id uuid.UUID) error
}

// PolicyServiceInterface defines the interface for policy service
type PolicyServiceInterface interface {
	Create(callerID uuid.UUID, req *CreatePolicyRequest) (*PolicyResponse, error)
	GetByID(callerID, id uuid.UUID) (*PolicyResponse, error)
	List(callerID, orgID uuid.UUID) ([]PolicyResponse, error)
	Update(callerID, id uuid.UUID, req *UpdatePolicyRequest) (*PolicyResponse, error)
	Delete(callerID, id uuid.UUID) error
	Debug(callerID, orgID, targetUserID, categoryID uuid.UUID) (*PolicyDebugResponse, error)
}

// ExpenseServiceInterface defines the interface for expense service
type ExpenseServiceInterface interface {
	Submit(callerID uuid.UUID, req *SubmitExpenseRequest) (*SubmitExpenseResponse, error)
	List(callerID, orgID uuid.UUID, filterUserID *uuid.UUID) ([]ExpenseResponse, error)
	ListForReview(callerID, orgID uuid.UUID) ([]ExpenseResponse, error)
	GetByID(callerID, id uuid.UUID) (*ExpenseDetailResponse, error)
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(callerID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	GetByID(callerID, id uuid.UUID) (*GroupResponse, error)
	List(callerID, orgID uuid.UUID) ([]GroupResponse, error)
	Update(callerID, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error)
	Delete(callerID, id uuid.UUID) error
	AddMember(callerID, groupID uuid.UUID, req *AddGroupMemberRequest) (*GroupResponse, error)
	RemoveMember(callerID, groupID, userID uuid.UUID) error
	GetHierarchy(callerID, orgID uuid.UUID) ([]*GroupTreeNode, error)
}

// MessageServiceInterface defines the interface for message service
type MessageServiceInterface interface {
	Create(callerID uuid.UUID, req *CreateMessageRequest) (*MessageResponse, error)
	List(callerID, orgID uuid.UUID) ([]MessageResponse, error)
}

// Compile-time interface checks
var (
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ CategoryServiceInterface     = (*CategoryService)(nil)
	_ PolicyServiceInterface       = (*PolicyService)(nil)
	_ ExpenseServiceInterface      = (*ExpenseService)(nil)
	_ GroupServiceInterface        = (*GroupService)(nil)
	_ MessageServiceInterface      = (*MessageService)(nil)
)
