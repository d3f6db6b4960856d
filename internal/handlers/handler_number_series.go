package handlers

import (
	"net/http"

	"github.com/SscSPs/books_core/internal/core/domain"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/SscSPs/books_core/internal/dto"
	"github.com/SscSPs/books_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type numberSeriesHandler struct {
	numberSeriesService portssvc.NumberSeriesSvc
}

func registerNumberSeriesRoutes(rg *gin.RouterGroup, nss portssvc.NumberSeriesSvc) {
	h := &numberSeriesHandler{numberSeriesService: nss}
	rg.GET("/number-series/:schema", h.getNumberSeries)
}

// getNumberSeries returns the default number series of a schema.
// GET /number-series/{schema}
func (h *numberSeriesHandler) getNumberSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.NumberSeriesURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown schema"})
		return
	}

	series, found, err := h.numberSeriesService.GetNumberSeries(c.Request.Context(), domain.SchemaName(uri.Schema))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get number series")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": uri.Schema + " has no number series"})
		return
	}
	c.JSON(http.StatusOK, dto.NumberSeriesResponse{Schema: uri.Schema, NumberSeries: series})
}
