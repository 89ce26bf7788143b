package handlers

import (
	"net/http"

	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles HTTP requests for expenses
type ExpenseHandler struct {
	service service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(service service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// SubmitExpense handles POST /api/v1/organizations/:id/expenses
// @Summary Submit an expense
// @Description Submit an expense for automatic adjudication against the applicable policy
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param expense body service.SubmitExpenseRequest true "Expense data (amount in minor currency units)"
// @Success 201 {object} service.SubmitExpenseResponse "Created expense with its adjudication outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request or future-dated expense"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 404 {object} map[string]interface{} "Category not found in this organization"
// @Security BearerAuth
// @Router /organizations/{id}/expenses [post]
func (h *ExpenseHandler) SubmitExpense(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var req service.SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.OrganizationID = orgID

	result, err := h.service.Submit(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to submit expense")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListExpenses handles GET /api/v1/organizations/:id/expenses
// @Summary List expenses
// @Description List the organization's expenses, newest first; optionally filtered by submitter
// @Tags expenses
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param user_id query string false "Filter by submitter (UUID)"
// @Success 200 {array} service.ExpenseResponse "Expenses"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	var filterUserID *uuid.UUID
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id: invalid UUID format"})
			return
		}
		filterUserID = &userID
	}

	expenses, err := h.service.List(caller, orgID, filterUserID)
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// ReviewQueue handles GET /api/v1/organizations/:id/expenses/review-queue
// @Summary List expenses awaiting review
// @Description List the organization's SUBMITTED expenses, oldest first; members only
// @Tags expenses
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.ExpenseResponse "Expenses awaiting manual review"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Security BearerAuth
// @Router /organizations/{id}/expenses/review-queue [get]
func (h *ExpenseHandler) ReviewQueue(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization ID")
	if !ok {
		return
	}

	expenses, err := h.service.ListForReview(caller, orgID)
	if err != nil {
		respondError(c, err, "Failed to list review queue")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense handles GET /api/v1/expenses/:id
// @Summary Get expense by ID
// @Description Get an expense with its audit trail; members of the owning organization only
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} service.ExpenseDetailResponse "Expense with its reviews"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "expense ID")
	if !ok {
		return
	}

	detail, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get expense")
		return
	}

	c.JSON(http.StatusOK, detail)
}
