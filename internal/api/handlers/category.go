package handlers

import (
	"net/http"

	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for expense categories
type CategoryHandler struct {
	service service.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CreateCategory handles POST /api/v1/organizations/:id/categories
// @Summary Create an expense category
// @Description Create a category in an organization; admins only, names unique per organization
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Successfully created category"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 409 {object} map[string]interface{} "Category name already exists"
// @Security BearerAuth
// @Router /organizations/{id}/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.OrganizationID = orgID

	category, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories handles GET /api/v1/organizations/:id/categories
// @Summary List expense categories
// @Description List all categories of an organization ordered by name; members only
// @Tags categories
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.CategoryResponse "Organization categories"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	categories, err := h.service.List(caller, orgID)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id
// @Summary Get category by ID
// @Description Get a specific category; members of the owning organization only
// @Tags categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} service.CategoryResponse "Successfully retrieved category"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "category ID")
	if !ok {
		return
	}

	category, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Update a category
// @Description Update a category's name or description; admins only
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.UpdateCategoryRequest true "Updated category data"
// @Success 200 {object} service.CategoryResponse "Successfully updated category"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Category name already exists"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "category ID")
	if !ok {
		return
	}

	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category, err := h.service.Update(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete a category
// @Description Delete a category with no policies or expenses referencing it; admins only
// @Tags categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} map[string]interface{} "Category deleted"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Category is referenced by policies or expenses"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "category ID")
	if !ok {
		return
	}

	if err := h.service.Delete(caller, id); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
