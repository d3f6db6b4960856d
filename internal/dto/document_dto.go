package dto

import (
	"time"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DocumentSnapshotRequest is an in-memory document posted for status resolution.
type DocumentSnapshotRequest struct {
	SchemaName string `json:"schemaName" binding:"required,schema_name"`
	Name       string `json:"name"`

	NotInserted bool `json:"notInserted"`
	Dirty       bool `json:"dirty"`
	Submitted   bool `json:"submitted"`
	Cancelled   bool `json:"cancelled"`

	IsReturn        bool   `json:"isReturn"`
	ReturnAgainst   string `json:"returnAgainst"`
	ReturnCompleted bool   `json:"returnCompleted"`

	Party    string    `json:"party"`
	Currency string    `json:"currency" binding:"omitempty,currency_code"`
	Date     time.Time `json:"date"`

	NetTotal            decimal.Decimal `json:"netTotal"`
	GrandTotal          decimal.Decimal `json:"grandTotal"`
	BaseGrandTotal      decimal.Decimal `json:"baseGrandTotal"`
	OutstandingAmount   decimal.Decimal `json:"outstandingAmount"`
	StockNotTransferred decimal.Decimal `json:"stockNotTransferred"`

	Items []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

// LineItemRequest is a line of DocumentSnapshotRequest.
type LineItemRequest struct {
	Name                string          `json:"name"`
	Item                string          `json:"item"`
	Quantity            decimal.Decimal `json:"quantity"`
	TransferQuantity    decimal.Decimal `json:"transferQuantity"`
	Rate                decimal.Decimal `json:"rate"`
	Amount              decimal.Decimal `json:"amount"`
	StockNotTransferred decimal.Decimal `json:"stockNotTransferred"`
}

// ToDomain converts the request to a domain Snapshot.
func (r DocumentSnapshotRequest) ToDomain() *domain.Snapshot {
	return &domain.Snapshot{
		SchemaName:          domain.SchemaName(r.SchemaName),
		Name:                r.Name,
		NotInserted:         r.NotInserted,
		Dirty:               r.Dirty,
		Submitted:           r.Submitted,
		Cancelled:           r.Cancelled,
		IsReturn:            r.IsReturn,
		ReturnAgainst:       r.ReturnAgainst,
		ReturnCompleted:     r.ReturnCompleted,
		Party:               r.Party,
		Currency:            r.Currency,
		Date:                r.Date,
		NetTotal:            r.NetTotal,
		GrandTotal:          r.GrandTotal,
		BaseGrandTotal:      r.BaseGrandTotal,
		OutstandingAmount:   r.OutstandingAmount,
		StockNotTransferred: r.StockNotTransferred,
		Items: lo.Map(r.Items, func(l LineItemRequest, _ int) domain.LineItem {
			return domain.LineItem{
				Name:                l.Name,
				Parent:              r.Name,
				Item:                l.Item,
				Quantity:            l.Quantity,
				TransferQuantity:    l.TransferQuantity,
				Rate:                l.Rate,
				Amount:              l.Amount,
				StockNotTransferred: l.StockNotTransferred,
			}
		}),
	}
}

// InvoiceURI binds the :schema and :name path parameters of invoice routes.
type InvoiceURI struct {
	Schema string `uri:"schema" binding:"required,oneof=SalesInvoice PurchaseInvoice"`
	Name   string `uri:"name" binding:"required"`
}

// ActionResponse describes one available action.
type ActionResponse struct {
	Kind  domain.ActionKind  `json:"kind"`
	Label string             `json:"label"`
	Group domain.ActionGroup `json:"group"`
}

// ToActionListResponse converts domain actions to their API form.
func ToActionListResponse(actions []domain.Action) []ActionResponse {
	return lo.Map(actions, func(a domain.Action, _ int) ActionResponse {
		return ActionResponse{Kind: a.Kind, Label: a.Label, Group: a.Group}
	})
}

// CompletionResponse reports the outcome of a return completion check.
type CompletionResponse struct {
	ReturnAgainst string                   `json:"returnAgainst"`
	Outcome       domain.CompletionOutcome `json:"outcome"`
}
