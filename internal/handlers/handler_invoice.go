package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/books_core/internal/core/domain"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/SscSPs/books_core/internal/dto"
	"github.com/SscSPs/books_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests for stored invoices: status, actions and returns.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceReaderSvc
	returnService  portssvc.ReturnDocumentSvc
	actionService  portssvc.InvoiceActionSvc
}

func newInvoiceHandler(is portssvc.InvoiceReaderSvc, rs portssvc.ReturnDocumentSvc, as portssvc.InvoiceActionSvc) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		returnService:  rs,
		actionService:  as,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, is portssvc.InvoiceReaderSvc, rs portssvc.ReturnDocumentSvc, as portssvc.InvoiceActionSvc) {
	h := newInvoiceHandler(is, rs, as)

	invoice := rg.Group("/invoices/:schema/:name")
	{
		invoice.GET("/status", h.getInvoiceStatus)
		invoice.GET("/actions", h.listActions)
		invoice.POST("/actions/:kind", h.executeAction)
		invoice.POST("/returns", h.createReturnDocument)
		invoice.POST("/return-completion", h.updateReturnCompletion)
	}
}

// loadInvoice binds the invoice path and fetches the snapshot. It writes the error response itself.
func (h *invoiceHandler) loadInvoice(c *gin.Context, logger *slog.Logger) (*domain.Snapshot, bool) {
	var uri dto.InvoiceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid invoice path", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice path: " + err.Error()})
		return nil, false
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), domain.SchemaName(uri.Schema), uri.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load invoice")
		return nil, false
	}
	return invoice, true
}

// getInvoiceStatus resolves the status badge of a stored invoice.
// GET /invoices/{schema}/{name}/status
func (h *invoiceHandler) getInvoiceStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.InvoiceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice path: " + err.Error()})
		return
	}

	badge, err := h.invoiceService.GetInvoiceStatus(c.Request.Context(), domain.SchemaName(uri.Schema), uri.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve invoice status")
		return
	}
	c.JSON(http.StatusOK, badge)
}

// listActions returns the actions currently available on an invoice.
// GET /invoices/{schema}/{name}/actions
func (h *invoiceHandler) listActions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, ok := h.loadInvoice(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToActionListResponse(h.actionService.AvailableActions(invoice)))
}

// executeAction runs an action and returns the draft or link it produced.
// A stock transfer with nothing left to move answers 204.
// POST /invoices/{schema}/{name}/actions/{kind}
func (h *invoiceHandler) executeAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, ok := h.loadInvoice(c, logger)
	if !ok {
		return
	}

	kind := domain.ActionKind(c.Param("kind"))
	logger = logger.With(slog.String("action", string(kind)), slog.String("invoice", invoice.Name))

	result, err := h.actionService.Execute(c.Request.Context(), kind, invoice)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute action")
		return
	}

	if kind == domain.ActionStockTransfer && result.StockTransfer == nil {
		logger.Info("Nothing left to transfer")
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, result)
}

// createReturnDocument drafts a credit or debit note against a stored invoice.
// POST /invoices/{schema}/{name}/returns
func (h *invoiceHandler) createReturnDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, ok := h.loadInvoice(c, logger)
	if !ok {
		return
	}

	draft, err := h.returnService.CreateReturnDocument(c.Request.Context(), invoice, invoice.SchemaName)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create return document")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// updateReturnCompletion checks a stored return document and flags its source once fully returned.
// POST /invoices/{schema}/{name}/return-completion
func (h *invoiceHandler) updateReturnCompletion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	returnDoc, ok := h.loadInvoice(c, logger)
	if !ok {
		return
	}

	outcome, err := h.returnService.UpdateReturnCompleteStatus(c.Request.Context(), returnDoc)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update return completion")
		return
	}

	logger.Info("Return completion checked",
		slog.String("return_against", returnDoc.ReturnAgainst),
		slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, dto.CompletionResponse{ReturnAgainst: returnDoc.ReturnAgainst, Outcome: outcome})
}
