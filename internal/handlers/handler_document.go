package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/SscSPs/books_core/internal/dto"
	"github.com/SscSPs/books_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerDocumentRoutes registers routes that work on posted, possibly unsaved documents.
func registerDocumentRoutes(rg *gin.RouterGroup) {
	documents := rg.Group("/documents")
	{
		documents.POST("/status", resolveDocumentStatus)
	}
}

// resolveDocumentStatus resolves the status badge of a posted document snapshot.
// POST /documents/status
func resolveDocumentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DocumentSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for document status", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.ResolveStatus(req.ToDomain()).Badge())
}
