package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/samber/lo"
)

type invoiceActionService struct {
	BaseService
	returns portssvc.ReturnDocumentSvc
	now     func() time.Time
}

// NewInvoiceActionService creates a new action service. Credit and debit notes are delegated to returns.
func NewInvoiceActionService(returns portssvc.ReturnDocumentSvc) portssvc.InvoiceActionSvc {
	return &invoiceActionService{returns: returns, now: time.Now}
}

var _ portssvc.InvoiceActionSvc = (*invoiceActionService)(nil)

func (s *invoiceActionService) AvailableActions(snapshot *domain.Snapshot) []domain.Action {
	if snapshot == nil {
		return nil
	}
	return lo.Filter(domain.ActionsFor(snapshot.SchemaName), func(a domain.Action, _ int) bool {
		return a.Enabled(snapshot)
	})
}

func (s *invoiceActionService) Execute(ctx context.Context, kind domain.ActionKind, snapshot *domain.Snapshot) (*domain.ActionResult, error) {
	if snapshot == nil {
		return nil, apperrors.NewValidationError("document is required")
	}

	action, ok := lo.Find(domain.ActionsFor(snapshot.SchemaName), func(a domain.Action) bool {
		return a.Kind == kind
	})
	if !ok {
		return nil, fmt.Errorf("%w: action %q does not exist for %s", apperrors.ErrValidation, kind, snapshot.SchemaName)
	}
	if !action.Enabled(snapshot) {
		return nil, fmt.Errorf("%w: action %q is not available for %s %s", apperrors.ErrValidation, kind, snapshot.SchemaName, snapshot.Name)
	}

	s.LogInfo(ctx, "Executing document action",
		slog.String("action", string(kind)),
		slog.String("schema", string(snapshot.SchemaName)),
		slog.String("name", snapshot.Name))

	result := &domain.ActionResult{Kind: kind}
	switch kind {
	case domain.ActionPayment:
		result.Payment = s.paymentDraft(snapshot)
	case domain.ActionCreditNote, domain.ActionDebitNote:
		draft, err := s.returns.CreateReturnDocument(ctx, snapshot, snapshot.SchemaName)
		if err != nil {
			return nil, err
		}
		result.Document = draft
	case domain.ActionStockTransfer:
		result.StockTransfer = s.stockTransferDraft(snapshot)
	case domain.ActionLedger:
		link := domain.NewLedgerLink(snapshot, domain.GeneralLedgerReport)
		result.LedgerLink = &link
	case domain.ActionStockLedger:
		link := domain.NewLedgerLink(snapshot, domain.StockLedgerReport)
		result.LedgerLink = &link
	}
	return result, nil
}

// paymentDraft settles the full outstanding amount of the invoice.
func (s *invoiceActionService) paymentDraft(invoice *domain.Snapshot) *domain.PaymentDraft {
	paymentType := domain.PaymentReceive
	if invoice.SchemaName == domain.PurchaseInvoice {
		paymentType = domain.PaymentPay
	}

	return &domain.PaymentDraft{
		PaymentType: paymentType,
		Party:       invoice.Party,
		Currency:    invoice.Currency,
		Date:        s.now(),
		Amount:      invoice.OutstandingAmount,
		For: []domain.PaymentReference{{
			ReferenceType: invoice.SchemaName,
			ReferenceName: invoice.Name,
			Amount:        invoice.OutstandingAmount,
		}},
	}
}

// stockTransferDraft moves the stock not yet transferred. It is nil when no line has any pending.
func (s *invoiceActionService) stockTransferDraft(invoice *domain.Snapshot) *domain.StockTransferDraft {
	pending := lo.FilterMap(invoice.Items, func(l domain.LineItem, _ int) (domain.DraftLine, bool) {
		if l.Item == "" || !l.StockNotTransferred.IsPositive() {
			return domain.DraftLine{}, false
		}
		return domain.DraftLine{
			Item:     l.Item,
			Quantity: l.StockNotTransferred,
			Rate:     l.Rate,
			Amount:   l.Rate.Mul(l.StockNotTransferred),
		}, true
	})
	if len(pending) == 0 {
		return nil
	}

	schema := domain.Shipment
	if invoice.SchemaName == domain.PurchaseInvoice {
		schema = domain.PurchaseReceipt
	}

	return &domain.StockTransferDraft{
		SchemaName:    schema,
		Party:         invoice.Party,
		Date:          s.now(),
		BackReference: invoice.Name,
		Items:         pending,
	}
}
