package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a read-only view of a persisted or in-memory document.
// Nothing in the core mutates a Snapshot; derive a DocumentDraft to build a new document.
type Snapshot struct {
	SchemaName SchemaName `json:"schemaName"`
	Name       string     `json:"name"` // Primary key, empty until inserted

	NotInserted bool `json:"notInserted"`
	Dirty       bool `json:"dirty"` // Unsaved local edits exist
	Submitted   bool `json:"submitted"`
	Cancelled   bool `json:"cancelled"`

	IsReturn        bool   `json:"isReturn"`
	ReturnAgainst   string `json:"returnAgainst"` // FK -> source invoice name
	ReturnCompleted bool   `json:"returnCompleted"`

	Party        string    `json:"party"`
	Currency     string    `json:"currency"`
	Date         time.Time `json:"date"`
	NumberSeries string    `json:"numberSeries"`

	NetTotal            decimal.Decimal `json:"netTotal"`
	GrandTotal          decimal.Decimal `json:"grandTotal"`
	BaseGrandTotal      decimal.Decimal `json:"baseGrandTotal"`
	OutstandingAmount   decimal.Decimal `json:"outstandingAmount"`
	StockNotTransferred decimal.Decimal `json:"stockNotTransferred"`

	Items []LineItem `json:"items"`
}

// LineItem is a row of a document's items table. It is owned by its parent document.
type LineItem struct {
	Name                string          `json:"name"`
	Parent              string          `json:"parent"`
	Item                string          `json:"item"` // FK -> Item.name
	Quantity            decimal.Decimal `json:"quantity"`
	TransferQuantity    decimal.Decimal `json:"transferQuantity"`
	Rate                decimal.Decimal `json:"rate"`
	Amount              decimal.Decimal `json:"amount"`
	StockNotTransferred decimal.Decimal `json:"stockNotTransferred"`
}

// IsSubmitted reports whether the document is submitted and still live.
func (s *Snapshot) IsSubmitted() bool {
	return s.Submitted && !s.Cancelled
}

// Clone returns a deep copy; the items slice is not shared.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	if s.Items != nil {
		c.Items = make([]LineItem, len(s.Items))
		copy(c.Items, s.Items)
	}
	return &c
}
