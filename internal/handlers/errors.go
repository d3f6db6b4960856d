package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP status codes.
// Validation errors and not-found errors carry their message to the client; anything else is logged and hidden.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      failureMsg,
			"request_id": middleware.GetRequestIDFromCtx(c.Request.Context()),
		})
	}
}
