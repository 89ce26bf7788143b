package handlers

import (
	"net/http"

	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup handles POST /api/v1/organizations/:id/groups
// @Summary Create a group
// @Description Create a group, optionally under a parent in the same organization; admins only
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} map[string]interface{} "Invalid request or invalid parent"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Security BearerAuth
// @Router /organizations/{id}/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.OrganizationID = orgID

	group, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, group)
}

// ListGroups handles GET /api/v1/organizations/:id/groups
// @Summary List groups
// @Description List all groups of an organization as a flat list; members only
// @Tags groups
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.GroupResponse "Organization groups"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	groups, err := h.service.List(caller, orgID)
	if err != nil {
		respondError(c, err, "Failed to list groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetHierarchy handles GET /api/v1/organizations/:id/groups/hierarchy
// @Summary Get the group hierarchy
// @Description Return the organization's groups as a forest of nested nodes; members only
// @Tags groups
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.GroupTreeNode "Group forest"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/groups/hierarchy [get]
func (h *GroupHandler) GetHierarchy(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	tree, err := h.service.GetHierarchy(caller, orgID)
	if err != nil {
		respondError(c, err, "Failed to get group hierarchy")
		return
	}

	c.JSON(http.StatusOK, tree)
}

// GetGroup handles GET /api/v1/groups/:id
// @Summary Get group by ID
// @Description Get a group with its members; members of the owning organization only
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	group, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get group")
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup handles PUT /api/v1/groups/:id
// @Summary Update a group
// @Description Rename, re-describe or re-parent a group; admins only. Re-parenting rejects cycles
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.UpdateGroupRequest true "Updated group data"
// @Success 200 {object} service.GroupResponse "Successfully updated group"
// @Failure 400 {object} map[string]interface{} "Invalid parent or circular hierarchy"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	group, err := h.service.Update(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update group")
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /api/v1/groups/:id
// @Summary Delete a group
// @Description Delete a group; its children become roots; admins only
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} map[string]interface{} "Group deleted"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	if err := h.service.Delete(caller, id); err != nil {
		respondError(c, err, "Failed to delete group")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

// AddGroupMember handles POST /api/v1/groups/:id/members
// @Summary Add a member to a group
// @Description Add an organization member to a group; admins only
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param member body service.AddGroupMemberRequest true "User to add"
// @Success 201 {object} service.GroupResponse "Group with its updated member list"
// @Failure 400 {object} map[string]interface{} "User is not a member of the organization"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 409 {object} map[string]interface{} "User is already in the group"
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *GroupHandler) AddGroupMember(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var req service.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	group, err := h.service.AddMember(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to add group member")
		return
	}

	c.JSON(http.StatusCreated, group)
}

// RemoveGroupMember handles DELETE /api/v1/groups/:id/members/:userId
// @Summary Remove a member from a group
// @Description Remove a user from a group; admins only
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "Member removed"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Group or membership not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{userId} [delete]
func (h *GroupHandler) RemoveGroupMember(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user ID")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(caller, id, userID); err != nil {
		respondError(c, err, "Failed to remove group member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group member removed successfully"})
}
