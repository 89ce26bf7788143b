package handlers

import (
	"errors"
	"net/http"

	"expense-portal-backend/internal/auth"
	apperrors "expense-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// callerID extracts the authenticated user's ID from the request context.
// Writes a 401 response and returns false when the context has no identity.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDParam parses a path parameter as a UUID. Writes a 400 response
// and returns false on malformed input.
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a service error to an HTTP status. Authorization failures
// and not-found entities surface their message verbatim; everything
// unclassified becomes a 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErrs validator.ValidationErrors

	switch {
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
