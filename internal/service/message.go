package service

import (
	"fmt"
	"time"

	"expense-portal-backend/internal/database/models"
	"expense-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MessageService handles the organization message board
type MessageService struct {
	repo      repository.MessageRepositoryInterface
	authz     *authorizer
	validator *validator.Validate
}

// NewMessageService creates a new message service
func NewMessageService(
	repo repository.MessageRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *MessageService {
	return &MessageService{
		repo:      repo,
		authz:     newAuthorizer(membershipRepo),
		validator: validator,
	}
}

// CreateMessageRequest represents the request to post a message
type CreateMessageRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Content        string    `json:"content" validate:"required,min=1,max=1000"`
}

// MessageResponse represents a message board entry
type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Create posts a message to the organization board; any member may post
func (s *MessageService) Create(callerID uuid.UUID, req *CreateMessageRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.authz.requireMember(req.OrganizationID, callerID); err != nil {
		return nil, err
	}

	message := &models.Message{
		OrganizationID: req.OrganizationID,
		UserID:         callerID,
		Content:        req.Content,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return s.toResponse(message), nil
}

// List retrieves the organization's messages, newest first; member only
func (s *MessageService) List(callerID, orgID uuid.UUID) ([]MessageResponse, error) {
	if _, err := s.authz.requireMember(orgID, callerID); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	responses := make([]MessageResponse, len(messages))
	for i := range messages {
		responses[i] = *s.toResponse(&messages[i])
	}
	return responses, nil
}

func (s *MessageService) toResponse(message *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:             message.ID,
		OrganizationID: message.OrganizationID,
		AuthorID:       message.UserID,
		AuthorName:     message.Author.Name,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}
}
