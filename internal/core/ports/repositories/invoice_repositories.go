package repositories

import (
	"context"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FieldMap is a sparse set of column values keyed by field name (e.g. "quantity").
type FieldMap map[string]any

// RecordQuery narrows a QueryRecords call. Filters are ANDed equality checks.
type RecordQuery struct {
	Filters FieldMap
	Fields  []string
}

// InvoiceReader defines read operations for invoices and their line items
type InvoiceReader interface {
	// FindInvoice loads an invoice with its items.
	FindInvoice(ctx context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error)

	// QueryRecords returns the requested fields of every record of schema matching the filters.
	// schema may be an invoice schema or its item table (see SchemaName.ItemSchema).
	QueryRecords(ctx context.Context, schema string, query RecordQuery) ([]FieldMap, error)

	// GetReturnedQuantity sums the quantity already returned for item against sourceName,
	// across submitted, non-cancelled return documents. The result is positive.
	GetReturnedQuantity(ctx context.Context, schema domain.SchemaName, item, sourceName string) (decimal.Decimal, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	// UpdateRecord sets the given fields on a single invoice.
	UpdateRecord(ctx context.Context, schema domain.SchemaName, name string, fields FieldMap) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
