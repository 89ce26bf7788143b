package handlers

import (
	"net/http"

	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization; the caller becomes its first admin
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List the caller's organizations
// @Description List all organizations the authenticated user belongs to
// @Tags organizations
// @Produce json
// @Success 200 {array} service.OrganizationResponse "Organizations the caller belongs to"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	orgs, err := h.service.List(caller)
	if err != nil {
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization; members only
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	org, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update an organization
// @Description Rename an organization; admins only
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListMembers handles GET /api/v1/organizations/:id/members
// @Summary List organization members
// @Description List all members of an organization with their roles
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.MemberResponse "Organization members"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	members, err := h.service.ListMembers(caller, id)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// InviteUser handles POST /api/v1/organizations/:id/members
// @Summary Invite a user to the organization
// @Description Add an existing user to the organization by email; admins only
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation body service.InviteUserRequest true "Invitation data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "User is already a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *OrganizationHandler) InviteUser(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.InviteUser(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to invite user")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateMemberRole handles PUT /api/v1/organizations/:id/members/:userId
// @Summary Change a member's role
// @Description Promote or demote a member; admins only
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} map[string]interface{} "Role updated"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [put]
func (h *OrganizationHandler) UpdateMemberRole(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user ID")
	if !ok {
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.UpdateMemberRole(caller, id, userID, &req); err != nil {
		respondError(c, err, "Failed to update member role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member role updated successfully"})
}

// RemoveMember handles DELETE /api/v1/organizations/:id/members/:userId
// @Summary Remove a member from the organization
// @Description Remove a member; admins only, self-removal is rejected
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "Member removed"
// @Failure 400 {object} map[string]interface{} "Self-removal attempted"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [delete]
func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user ID")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(caller, id, userID); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
