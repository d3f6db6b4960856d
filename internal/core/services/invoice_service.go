package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
}

// NewInvoiceService creates a new invoice read service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceReader) portssvc.InvoiceReaderSvc {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

var _ portssvc.InvoiceReaderSvc = (*invoiceService)(nil)

func (s *invoiceService) GetInvoice(ctx context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error) {
	if !schema.IsInvoice() {
		return nil, fmt.Errorf("%w: %q is not an invoice schema", apperrors.ErrValidation, schema)
	}
	invoice, err := s.invoiceRepo.FindInvoice(ctx, schema, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", name, err)
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoiceStatus(ctx context.Context, schema domain.SchemaName, name string) (domain.StatusBadge, error) {
	invoice, err := s.GetInvoice(ctx, schema, name)
	if err != nil {
		return domain.StatusBadge{}, err
	}
	return domain.ResolveStatus(invoice).Badge(), nil
}
