package services

import (
	"context"

	"github.com/SscSPs/books_core/internal/core/domain"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoice loads an invoice snapshot.
	GetInvoice(ctx context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error)

	// GetInvoiceStatus loads an invoice and resolves its status badge.
	GetInvoiceStatus(ctx context.Context, schema domain.SchemaName, name string) (domain.StatusBadge, error)
}

// ReturnDocumentSvc generates credit/debit notes and tracks when a source is fully returned
type ReturnDocumentSvc interface {
	// CreateReturnDocument derives an unsaved return draft from a submitted source invoice.
	CreateReturnDocument(ctx context.Context, source *domain.Snapshot, kind domain.SchemaName) (*domain.DocumentDraft, error)

	// UpdateReturnCompleteStatus marks the source of returnDoc as fully returned when every line is.
	UpdateReturnCompleteStatus(ctx context.Context, returnDoc *domain.Snapshot) (domain.CompletionOutcome, error)
}

// InvoiceActionSvc lists and runs the follow-up actions of a document
type InvoiceActionSvc interface {
	// AvailableActions returns the actions whose condition holds for the snapshot, in display order.
	AvailableActions(snapshot *domain.Snapshot) []domain.Action

	// Execute runs one action and returns the draft or link it produces.
	Execute(ctx context.Context, kind domain.ActionKind, snapshot *domain.Snapshot) (*domain.ActionResult, error)
}
