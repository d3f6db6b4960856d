package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// returnDocumentService implements the ReturnDocumentSvc interface
type returnDocumentService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewReturnDocumentService creates a new return document service
func NewReturnDocumentService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.ReturnDocumentSvc {
	return &returnDocumentService{invoiceRepo: invoiceRepo}
}

// Ensure returnDocumentService implements the ReturnDocumentSvc interface
var _ portssvc.ReturnDocumentSvc = (*returnDocumentService)(nil)

// CreateReturnDocument builds a credit note (sales) or debit note (purchase) draft against source.
// Lines without an item or with zero quantity keep their quantities. Every other line is
// reduced by what earlier returns already took back and sign-inverted. Earlier returns of an
// item are counted against its lines in order, so an item split over several lines is only
// rejected when more than its total was returned. Lookups run one item at a time.
func (s *returnDocumentService) CreateReturnDocument(ctx context.Context, source *domain.Snapshot, kind domain.SchemaName) (*domain.DocumentDraft, error) {
	if source == nil {
		return nil, apperrors.NewValidationError("source document is required")
	}
	if !kind.IsInvoice() {
		return nil, fmt.Errorf("%w: return documents can only be made for invoices, got %q", apperrors.ErrValidation, kind)
	}
	if source.SchemaName != kind {
		return nil, fmt.Errorf("%w: source %s is a %s, not a %s", apperrors.ErrValidation, source.Name, source.SchemaName, kind)
	}

	draft := domain.NewDraftFromSnapshot(source)
	draft.Name = ""
	draft.Submitted = false
	draft.Cancelled = false
	draft.IsReturn = true
	draft.ReturnAgainst = source.Name
	draft.NetTotal = source.NetTotal.Neg()
	draft.BaseGrandTotal = source.BaseGrandTotal.Neg()
	draft.GrandTotal = source.GrandTotal.Neg()
	draft.OutstandingAmount = decimal.Zero

	// returned quantity of each item not yet counted against one of its lines
	unallocated := make(map[string]decimal.Decimal)
	invoiced := make(map[string]decimal.Decimal)
	for _, line := range draft.Items {
		if line.Item != "" {
			invoiced[line.Item] = invoiced[line.Item].Add(line.Quantity)
		}
	}

	for i := range draft.Items {
		line := &draft.Items[i]
		line.Name = ""
		if line.Item == "" || line.Quantity.IsZero() {
			continue
		}

		left, seen := unallocated[line.Item]
		if !seen {
			returned, err := s.invoiceRepo.GetReturnedQuantity(ctx, kind, line.Item, draft.ReturnAgainst)
			if err != nil {
				s.LogError(ctx, err, "Failed to get returned quantity",
					slog.String("schema", string(kind)),
					slog.String("item", line.Item),
					slog.String("return_against", draft.ReturnAgainst))
				return nil, fmt.Errorf("failed to get returned quantity of %s on %s: %w", line.Item, draft.ReturnAgainst, err)
			}
			if returned.GreaterThan(invoiced[line.Item]) {
				return nil, fmt.Errorf("%w: item %s on %s was returned %s times but only %s were invoiced",
					apperrors.ErrValidation, line.Item, draft.ReturnAgainst, returned, invoiced[line.Item])
			}
			left = returned
		}

		taken := decimal.Min(left, line.Quantity)
		if taken.IsNegative() {
			taken = decimal.Zero
		}
		unallocated[line.Item] = left.Sub(taken)

		line.Quantity = line.Quantity.Sub(taken).Neg()
		line.TransferQuantity = line.TransferQuantity.Neg()
		line.Amount = line.Rate.Mul(line.Quantity)
	}

	s.LogInfo(ctx, "Return document drafted",
		slog.String("schema", string(kind)),
		slog.String("return_against", draft.ReturnAgainst),
		slog.Int("lines", len(draft.Items)))
	return draft, nil
}

// UpdateReturnCompleteStatus flags the source of a return document returnCompleted once every
// item on the source has been returned in full. Source lines are summed per item and compared
// with the cumulative returned quantity, one item at a time.
// Indeterminate and Incomplete outcomes leave the source untouched.
func (s *returnDocumentService) UpdateReturnCompleteStatus(ctx context.Context, returnDoc *domain.Snapshot) (domain.CompletionOutcome, error) {
	if returnDoc == nil || !returnDoc.IsReturn || returnDoc.ReturnAgainst == "" || len(returnDoc.Items) == 0 {
		return domain.CompletionIndeterminate, nil
	}
	if lo.ContainsBy(returnDoc.Items, func(l domain.LineItem) bool { return l.Item == "" }) {
		return domain.CompletionIndeterminate, nil
	}

	schema := returnDoc.SchemaName
	rows, err := s.invoiceRepo.QueryRecords(ctx, schema.ItemSchema(), portsrepo.RecordQuery{
		Filters: portsrepo.FieldMap{"parent": returnDoc.ReturnAgainst},
		Fields:  []string{"item", "quantity"},
	})
	if err != nil {
		return domain.CompletionIndeterminate, fmt.Errorf("failed to load lines of %s: %w", returnDoc.ReturnAgainst, err)
	}

	var items []string
	invoiced := make(map[string]decimal.Decimal)
	for _, row := range rows {
		item, _ := row["item"].(string)
		if item == "" {
			continue
		}
		quantity, err := decimalField(row, "quantity")
		if err != nil {
			return domain.CompletionIndeterminate, fmt.Errorf("source line %s of %s: %w", item, returnDoc.ReturnAgainst, err)
		}
		if _, ok := invoiced[item]; !ok {
			items = append(items, item)
		}
		invoiced[item] = invoiced[item].Add(quantity)
	}

	for _, line := range returnDoc.Items {
		if _, ok := invoiced[line.Item]; !ok {
			s.LogDebug(ctx, "Source line not found, skipping completion check",
				slog.String("item", line.Item),
				slog.String("return_against", returnDoc.ReturnAgainst))
			return domain.CompletionIndeterminate, nil
		}
	}

	for _, item := range items {
		returned, err := s.invoiceRepo.GetReturnedQuantity(ctx, schema, item, returnDoc.ReturnAgainst)
		if err != nil {
			return domain.CompletionIndeterminate, fmt.Errorf("failed to get returned quantity of %s on %s: %w", item, returnDoc.ReturnAgainst, err)
		}
		if !returned.Equal(invoiced[item]) {
			return domain.CompletionIncomplete, nil
		}
	}

	err = s.invoiceRepo.UpdateRecord(ctx, schema, returnDoc.ReturnAgainst, portsrepo.FieldMap{"returnCompleted": true})
	if err != nil {
		s.LogError(ctx, err, "Failed to mark invoice as returned",
			slog.String("schema", string(schema)),
			slog.String("name", returnDoc.ReturnAgainst))
		return domain.CompletionIndeterminate, fmt.Errorf("failed to mark %s as returned: %w", returnDoc.ReturnAgainst, err)
	}

	s.LogInfo(ctx, "Invoice fully returned",
		slog.String("schema", string(schema)),
		slog.String("name", returnDoc.ReturnAgainst))
	return domain.CompletionComplete, nil
}
