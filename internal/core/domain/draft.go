package domain

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DocumentDraft is a mutable, not yet persisted document.
// The return generator and the item helpers build drafts; callers decide whether to save them.
type DocumentDraft struct {
	SchemaName SchemaName `json:"schemaName"`
	Name       string     `json:"name,omitempty"` // Empty until saved

	Submitted bool `json:"submitted"`
	Cancelled bool `json:"cancelled"`

	IsReturn      bool   `json:"isReturn"`
	ReturnAgainst string `json:"returnAgainst,omitempty"`

	Party        string    `json:"party"`
	Currency     string    `json:"currency"`
	Date         time.Time `json:"date"`
	NumberSeries string    `json:"numberSeries"`

	NetTotal          decimal.Decimal `json:"netTotal"`
	GrandTotal        decimal.Decimal `json:"grandTotal"`
	BaseGrandTotal    decimal.Decimal `json:"baseGrandTotal"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`

	Items []DraftLine `json:"items"`
}

// DraftLine is a line of a DocumentDraft.
type DraftLine struct {
	Name             string          `json:"name,omitempty"`
	Item             string          `json:"item"`
	Quantity         decimal.Decimal `json:"quantity"`
	TransferQuantity decimal.Decimal `json:"transferQuantity"`
	Rate             decimal.Decimal `json:"rate"`
	Amount           decimal.Decimal `json:"amount"`
}

// NewDraftFromSnapshot copies a snapshot into a detached draft.
// Later changes to the draft never reach the snapshot.
func NewDraftFromSnapshot(s *Snapshot) *DocumentDraft {
	return &DocumentDraft{
		SchemaName:        s.SchemaName,
		Name:              s.Name,
		Submitted:         s.Submitted,
		Cancelled:         s.Cancelled,
		IsReturn:          s.IsReturn,
		ReturnAgainst:     s.ReturnAgainst,
		Party:             s.Party,
		Currency:          s.Currency,
		Date:              s.Date,
		NumberSeries:      s.NumberSeries,
		NetTotal:          s.NetTotal,
		GrandTotal:        s.GrandTotal,
		BaseGrandTotal:    s.BaseGrandTotal,
		OutstandingAmount: s.OutstandingAmount,
		Items: lo.Map(s.Items, func(l LineItem, _ int) DraftLine {
			return DraftLine{
				Name:             l.Name,
				Item:             l.Item,
				Quantity:         l.Quantity,
				TransferQuantity: l.TransferQuantity,
				Rate:             l.Rate,
				Amount:           l.Amount,
			}
		}),
	}
}

// CanEdit reports whether the draft still accepts changes.
func (d *DocumentDraft) CanEdit() bool {
	return !d.Submitted && !d.Cancelled
}

// AddItem bumps the quantity of the line holding item by one, or appends a new line for it.
// It returns false and leaves the draft untouched when the draft is not editable.
func (d *DocumentDraft) AddItem(item string) bool {
	if !d.CanEdit() {
		return false
	}

	if _, idx, ok := lo.FindIndexOf(d.Items, func(l DraftLine) bool { return l.Item == item }); ok {
		line := &d.Items[idx]
		line.Quantity = line.Quantity.Add(decimal.NewFromInt(1))
		line.Amount = line.Rate.Mul(line.Quantity)
		return true
	}

	d.Items = append(d.Items, DraftLine{
		Item:     item,
		Quantity: decimal.NewFromInt(1),
	})
	return true
}
