package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// noReturnsRecorded stands in for the invoice store when the CLI works on a single file.
// Nothing has been returned yet and nothing can be loaded or written.
type noReturnsRecorded struct{}

var (
	_ portsrepo.InvoiceRepositoryFacade = noReturnsRecorded{}
	_ portsrepo.SinglesReader           = noSingles{}
)

func (noReturnsRecorded) FindInvoice(_ context.Context, schema domain.SchemaName, name string) (*domain.Snapshot, error) {
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found", schema, name))
}

func (noReturnsRecorded) QueryRecords(context.Context, string, portsrepo.RecordQuery) ([]portsrepo.FieldMap, error) {
	return nil, nil
}

func (noReturnsRecorded) GetReturnedQuantity(context.Context, domain.SchemaName, string, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (noReturnsRecorded) UpdateRecord(_ context.Context, schema domain.SchemaName, name string, _ portsrepo.FieldMap) error {
	return fmt.Errorf("cannot update %s %s offline", schema, name)
}

// noSingles has no stored settings, so number series fall back to the schema defaults.
type noSingles struct{}

func (noSingles) GetSingleValue(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}
