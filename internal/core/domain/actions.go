package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ActionKind identifies an invoice action.
type ActionKind string

const (
	ActionPayment       ActionKind = "payment"
	ActionCreditNote    ActionKind = "credit-note"
	ActionDebitNote     ActionKind = "debit-note"
	ActionStockTransfer ActionKind = "stock-transfer"
	ActionLedger        ActionKind = "ledger"
	ActionStockLedger   ActionKind = "stock-ledger"
)

// ActionGroup is the menu group an action is listed under.
type ActionGroup string

const (
	ActionGroupCreate ActionGroup = "Create"
	ActionGroupView   ActionGroup = "View"
)

// Report class names used by ledger links.
const (
	GeneralLedgerReport = "GeneralLedger"
	StockLedgerReport   = "StockLedger"
)

// Action describes a follow-up operation offered on a document.
type Action struct {
	Kind      ActionKind           `json:"kind"`
	Label     string               `json:"label"`
	Group     ActionGroup          `json:"group"`
	Condition func(*Snapshot) bool `json:"-"`
}

// Enabled reports whether the action applies to the snapshot.
func (a Action) Enabled(s *Snapshot) bool {
	if s == nil {
		return false
	}
	return a.Condition == nil || a.Condition(s)
}

// InvoiceActions returns the actions of an invoice schema in display order.
func InvoiceActions(schema SchemaName) []Action {
	return []Action{
		paymentAction(),
		creditNoteAction(schema),
		debitNoteAction(schema),
		stockTransferAction(schema),
		LedgerLinkAction(false),
	}
}

// StockActions returns the actions offered on stock documents.
func StockActions() []Action {
	return []Action{LedgerLinkAction(true)}
}

// ActionsFor returns the actions registered for a schema, or nil when it has none.
func ActionsFor(schema SchemaName) []Action {
	switch schema {
	case SalesInvoice, PurchaseInvoice:
		return InvoiceActions(schema)
	case Shipment, PurchaseReceipt, StockMovement:
		return StockActions()
	default:
		return nil
	}
}

func paymentAction() Action {
	return Action{
		Kind:  ActionPayment,
		Label: "Payment",
		Group: ActionGroupCreate,
		Condition: func(s *Snapshot) bool {
			return s.IsSubmitted() && !s.IsReturn && !s.OutstandingAmount.IsZero()
		},
	}
}

func creditNoteAction(schema SchemaName) Action {
	return Action{
		Kind:  ActionCreditNote,
		Label: "Return / Credit Note",
		Group: ActionGroupCreate,
		Condition: func(s *Snapshot) bool {
			return schema == SalesInvoice && s.IsSubmitted() && !s.IsReturn && !s.ReturnCompleted
		},
	}
}

func debitNoteAction(schema SchemaName) Action {
	return Action{
		Kind:  ActionDebitNote,
		Label: "Return / Debit Note",
		Group: ActionGroupCreate,
		Condition: func(s *Snapshot) bool {
			return schema == PurchaseInvoice && s.IsSubmitted() && !s.IsReturn && !s.ReturnCompleted
		},
	}
}

func stockTransferAction(schema SchemaName) Action {
	label := "Shipment"
	if schema == PurchaseInvoice {
		label = "Purchase Receipt"
	}
	return Action{
		Kind:  ActionStockTransfer,
		Label: label,
		Group: ActionGroupCreate,
		Condition: func(s *Snapshot) bool {
			return s.IsSubmitted() && !s.StockNotTransferred.IsZero()
		},
	}
}

// LedgerLinkAction builds the "view entries" action for the general or the stock ledger.
func LedgerLinkAction(stock bool) Action {
	a := Action{
		Kind:      ActionLedger,
		Label:     "Accounting Entries",
		Group:     ActionGroupView,
		Condition: func(s *Snapshot) bool { return s.IsSubmitted() },
	}
	if stock {
		a.Kind = ActionStockLedger
		a.Label = "Stock Entries"
	}
	return a
}

// LedgerLink is a route to a ledger report pre-filtered to one document.
type LedgerLink struct {
	Name   string           `json:"name"`
	Params LedgerLinkParams `json:"params"`
}

// LedgerLinkParams carries the report class and its JSON-encoded default filters.
type LedgerLinkParams struct {
	ReportClassName string `json:"reportClassName"`
	DefaultFilters  string `json:"defaultFilters"`
}

// NewLedgerLink builds the report route for a document.
func NewLedgerLink(s *Snapshot, reportClassName string) LedgerLink {
	filters, _ := json.Marshal(struct {
		ReferenceType SchemaName `json:"referenceType"`
		ReferenceName string     `json:"referenceName"`
	}{ReferenceType: s.SchemaName, ReferenceName: s.Name})

	return LedgerLink{
		Name: "Report",
		Params: LedgerLinkParams{
			ReportClassName: reportClassName,
			DefaultFilters:  string(filters),
		},
	}
}

// PaymentType is the direction of a payment.
type PaymentType string

const (
	PaymentReceive PaymentType = "Receive"
	PaymentPay     PaymentType = "Pay"
)

// PaymentReference links a payment to the invoice it settles.
type PaymentReference struct {
	ReferenceType SchemaName      `json:"referenceType"`
	ReferenceName string          `json:"referenceName"`
	Amount        decimal.Decimal `json:"amount"`
}

// PaymentDraft is an unsaved payment against an invoice.
type PaymentDraft struct {
	PaymentType PaymentType        `json:"paymentType"`
	Party       string             `json:"party"`
	Currency    string             `json:"currency"`
	Date        time.Time          `json:"date"`
	Amount      decimal.Decimal    `json:"amount"`
	For         []PaymentReference `json:"for"`
}

// StockTransferDraft is an unsaved shipment or purchase receipt for an invoice's pending stock.
type StockTransferDraft struct {
	SchemaName    SchemaName  `json:"schemaName"`
	Party         string      `json:"party"`
	Date          time.Time   `json:"date"`
	BackReference string      `json:"backReference"` // Source invoice name
	Items         []DraftLine `json:"items"`
}

// ActionResult is the effect of executing an action. Exactly one field is set,
// except for a stock transfer with nothing pending, where all are nil.
type ActionResult struct {
	Kind          ActionKind          `json:"kind"`
	Payment       *PaymentDraft       `json:"payment,omitempty"`
	Document      *DocumentDraft      `json:"document,omitempty"`
	StockTransfer *StockTransferDraft `json:"stockTransfer,omitempty"`
	LedgerLink    *LedgerLink         `json:"ledgerLink,omitempty"`
}
