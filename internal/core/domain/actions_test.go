package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledKinds(s *domain.Snapshot) []domain.ActionKind {
	actions := lo.Filter(domain.ActionsFor(s.SchemaName), func(a domain.Action, _ int) bool {
		return a.Enabled(s)
	})
	return lo.Map(actions, func(a domain.Action, _ int) domain.ActionKind { return a.Kind })
}

func TestInvoiceActions_Order(t *testing.T) {
	kinds := lo.Map(domain.InvoiceActions(domain.SalesInvoice), func(a domain.Action, _ int) domain.ActionKind { return a.Kind })
	assert.Equal(t, []domain.ActionKind{
		domain.ActionPayment,
		domain.ActionCreditNote,
		domain.ActionDebitNote,
		domain.ActionStockTransfer,
		domain.ActionLedger,
	}, kinds)
}

func TestActionsFor_Conditions(t *testing.T) {
	tests := []struct {
		name string
		doc  *domain.Snapshot
		want []domain.ActionKind
	}{
		{
			name: "draft invoice has no actions",
			doc:  &domain.Snapshot{SchemaName: domain.SalesInvoice, OutstandingAmount: dec(100)},
			want: []domain.ActionKind{},
		},
		{
			name: "unpaid sales invoice",
			doc:  submittedInvoice(domain.SalesInvoice, 100, 100),
			want: []domain.ActionKind{domain.ActionPayment, domain.ActionCreditNote, domain.ActionLedger},
		},
		{
			name: "paid purchase invoice with pending stock",
			doc: func() *domain.Snapshot {
				s := submittedInvoice(domain.PurchaseInvoice, 100, 0)
				s.StockNotTransferred = dec(3)
				return s
			}(),
			want: []domain.ActionKind{domain.ActionDebitNote, domain.ActionStockTransfer, domain.ActionLedger},
		},
		{
			name: "fully returned sales invoice",
			doc: func() *domain.Snapshot {
				s := submittedInvoice(domain.SalesInvoice, 100, 0)
				s.ReturnCompleted = true
				return s
			}(),
			want: []domain.ActionKind{domain.ActionLedger},
		},
		{
			name: "return document cannot be paid or returned",
			doc: func() *domain.Snapshot {
				s := submittedInvoice(domain.SalesInvoice, -100, -100)
				s.IsReturn = true
				return s
			}(),
			want: []domain.ActionKind{domain.ActionLedger},
		},
		{
			name: "cancelled invoice",
			doc: func() *domain.Snapshot {
				s := submittedInvoice(domain.SalesInvoice, 100, 100)
				s.Cancelled = true
				return s
			}(),
			want: []domain.ActionKind{},
		},
		{
			name: "submitted shipment",
			doc:  &domain.Snapshot{SchemaName: domain.Shipment, Submitted: true},
			want: []domain.ActionKind{domain.ActionStockLedger},
		},
		{
			name: "schema without actions",
			doc:  &domain.Snapshot{SchemaName: domain.Party, Submitted: true},
			want: []domain.ActionKind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, enabledKinds(tt.doc))
		})
	}
}

func TestStockTransferAction_Label(t *testing.T) {
	sales, ok := lo.Find(domain.InvoiceActions(domain.SalesInvoice), func(a domain.Action) bool {
		return a.Kind == domain.ActionStockTransfer
	})
	require.True(t, ok)
	assert.Equal(t, "Shipment", sales.Label)

	purchase, ok := lo.Find(domain.InvoiceActions(domain.PurchaseInvoice), func(a domain.Action) bool {
		return a.Kind == domain.ActionStockTransfer
	})
	require.True(t, ok)
	assert.Equal(t, "Purchase Receipt", purchase.Label)
}

func TestAction_EnabledNilSnapshot(t *testing.T) {
	for _, a := range domain.InvoiceActions(domain.SalesInvoice) {
		assert.False(t, a.Enabled(nil), a.Kind)
	}
}

func TestLedgerLinkAction(t *testing.T) {
	general := domain.LedgerLinkAction(false)
	assert.Equal(t, domain.ActionLedger, general.Kind)
	assert.Equal(t, "Accounting Entries", general.Label)
	assert.Equal(t, domain.ActionGroupView, general.Group)

	stock := domain.LedgerLinkAction(true)
	assert.Equal(t, domain.ActionStockLedger, stock.Kind)
	assert.Equal(t, "Stock Entries", stock.Label)
}

func TestNewLedgerLink(t *testing.T) {
	doc := submittedInvoice(domain.SalesInvoice, 100, 100)

	link := domain.NewLedgerLink(doc, domain.GeneralLedgerReport)

	assert.Equal(t, "Report", link.Name)
	assert.Equal(t, domain.GeneralLedgerReport, link.Params.ReportClassName)

	var filters map[string]string
	require.NoError(t, json.Unmarshal([]byte(link.Params.DefaultFilters), &filters))
	assert.Equal(t, map[string]string{
		"referenceType": "SalesInvoice",
		"referenceName": "SINV-1001",
	}, filters)
}
