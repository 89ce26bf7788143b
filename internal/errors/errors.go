package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound      = &NotFoundError{Entity: "membership"}
	ErrCategoryNotFound        = &NotFoundError{Entity: "category"}
	ErrPolicyNotFound          = &NotFoundError{Entity: "policy"}
	ErrExpenseNotFound         = &NotFoundError{Entity: "expense"}
	ErrGroupNotFound           = &NotFoundError{Entity: "group"}
	ErrGroupMembershipNotFound = &NotFoundError{Entity: "group membership"}
)

// Already Exists Errors
var (
	ErrCategoryExists        = &AlreadyExistsError{Entity: "category name", Context: "in this organization"}
	ErrPolicyExists          = &AlreadyExistsError{Entity: "policy", Context: "for this category and scope"}
	ErrMembershipExists      = &AlreadyExistsError{Entity: "membership", Context: "in this organization"}
	ErrGroupMembershipExists = &AlreadyExistsError{Entity: "group membership", Context: ""}
)

// Authorization Errors. Message text is asserted by tests and surfaced
// verbatim to callers, so it is part of the API contract.
var (
	ErrNotOrganizationMember = &AuthorizationError{Message: "You are not a member of this organization"}
)

// Business Logic Errors
var (
	ErrCategoryNotInOrganization = &NotFoundError{Entity: "category in this organization"}
	ErrCategoryInUse             = errors.New("category has policies or expenses referencing it")
	ErrExpenseDateInFuture       = &ValidationError{Field: "date", Message: "expense date cannot be in the future"}
	ErrSelfRemoval               = &ValidationError{Message: "you cannot remove yourself from the organization"}
	ErrGroupSelfParent           = &ValidationError{Field: "parent_group_id", Message: "a group cannot be its own parent"}
	ErrGroupCycle                = &ValidationError{Field: "parent_group_id", Message: "cannot create circular hierarchy"}
	ErrParentGroupInvalid        = &ValidationError{Field: "parent_group_id", Message: "parent group not found or belongs to different organization"}
	ErrUserNotInOrganization     = &ValidationError{Field: "user_id", Message: "user is not a member of this organization"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
