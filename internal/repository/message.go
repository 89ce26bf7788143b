package repository

import (
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for the message board
type MessageRepository struct {
	db *gorm.DB
}

// Ensure MessageRepository implements MessageRepositoryInterface
var _ MessageRepositoryInterface = (*MessageRepository)(nil)

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to the organization's board
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListByOrganizationID retrieves all messages of an organization newest first
func (r *MessageRepository) ListByOrganizationID(orgID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Author").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
