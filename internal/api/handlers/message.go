package handlers

import (
	"net/http"

	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles HTTP requests for the organization message board
type MessageHandler struct {
	service service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// CreateMessage handles POST /api/v1/organizations/:id/messages
// @Summary Post a message
// @Description Post a message to the organization board; any member may post
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param message body service.CreateMessageRequest true "Message content"
// @Success 201 {object} service.MessageResponse "Successfully posted message"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.OrganizationID = orgID

	message, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to post message")
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages handles GET /api/v1/organizations/:id/messages
// @Summary List messages
// @Description List the organization's messages, newest first; members only
// @Tags messages
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.MessageResponse "Organization messages"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	messages, err := h.service.List(caller, orgID)
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
