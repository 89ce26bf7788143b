package handlers

import (
	"net/http"

	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PolicyHandler handles HTTP requests for reimbursement policies
type PolicyHandler struct {
	service service.PolicyServiceInterface
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(service service.PolicyServiceInterface) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// CreatePolicy handles POST /api/v1/organizations/:id/policies
// @Summary Create a reimbursement policy
// @Description Create an organization-wide or user-specific policy; admins only
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param policy body service.CreatePolicyRequest true "Policy data"
// @Success 201 {object} service.PolicyResponse "Successfully created policy"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Category not found in this organization"
// @Failure 409 {object} map[string]interface{} "Policy already exists for this scope"
// @Security BearerAuth
// @Router /organizations/{id}/policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.OrganizationID = orgID

	policy, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create policy")
		return
	}

	c.JSON(http.StatusCreated, policy)
}

// ListPolicies handles GET /api/v1/organizations/:id/policies
// @Summary List policies
// @Description List all policies of an organization; members only
// @Tags policies
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.PolicyResponse "Organization policies"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/policies [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	policies, err := h.service.List(caller, orgID)
	if err != nil {
		respondError(c, err, "Failed to list policies")
		return
	}

	c.JSON(http.StatusOK, policies)
}

// DebugPolicy handles GET /api/v1/organizations/:id/policies/debug
// @Summary Inspect policy resolution
// @Description Show the user-specific and organization-wide candidates for a category and which one applies
// @Tags policies
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param category_id query string true "Category ID (UUID)"
// @Param user_id query string false "User ID (UUID), defaults to the caller"
// @Success 200 {object} service.PolicyDebugResponse "Resolution candidates and selection"
// @Failure 400 {object} map[string]interface{} "Missing or invalid category_id"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Category not found in this organization"
// @Security BearerAuth
// @Router /organizations/{id}/policies/debug [get]
func (h *PolicyHandler) DebugPolicy(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(c.Query("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id: invalid UUID format"})
		return
	}

	targetUserID := caller
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		targetUserID, err = uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id: invalid UUID format"})
			return
		}
	}

	debug, err := h.service.Debug(caller, orgID, targetUserID, categoryID)
	if err != nil {
		respondError(c, err, "Failed to resolve policy")
		return
	}

	c.JSON(http.StatusOK, debug)
}

// GetPolicy handles GET /api/v1/policies/:id
// @Summary Get policy by ID
// @Description Get a specific policy; members of the owning organization only
// @Tags policies
// @Produce json
// @Param id path string true "Policy ID (UUID)"
// @Success 200 {object} service.PolicyResponse "Successfully retrieved policy"
// @Failure 404 {object} map[string]interface{} "Policy not found"
// @Security BearerAuth
// @Router /policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "policy ID")
	if !ok {
		return
	}

	policy, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get policy")
		return
	}

	c.JSON(http.StatusOK, policy)
}

// UpdatePolicy handles PUT /api/v1/policies/:id
// @Summary Update a policy
// @Description Change a policy's limit, period or auto-approve flag; the scope is immutable; admins only
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID (UUID)"
// @Param policy body service.UpdatePolicyRequest true "Updated policy settings"
// @Success 200 {object} service.PolicyResponse "Successfully updated policy"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Policy not found"
// @Security BearerAuth
// @Router /policies/{id} [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "policy ID")
	if !ok {
		return
	}

	var req service.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	policy, err := h.service.Update(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update policy")
		return
	}

	c.JSON(http.StatusOK, policy)
}

// DeletePolicy handles DELETE /api/v1/policies/:id
// @Summary Delete a policy
// @Description Delete a policy; admins only. Already-adjudicated expenses are unaffected
// @Tags policies
// @Produce json
// @Param id path string true "Policy ID (UUID)"
// @Success 200 {object} map[string]interface{} "Policy deleted"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Policy not found"
// @Security BearerAuth
// @Router /policies/{id} [delete]
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "policy ID")
	if !ok {
		return
	}

	if err := h.service.Delete(caller, id); err != nil {
		respondError(c, err, "Failed to delete policy")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Policy deleted successfully"})
}
