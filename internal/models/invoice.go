package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors a row of the invoices table.
type Invoice struct {
	SchemaName          string          `db:"schema_name"`
	Name                string          `db:"name"`
	Party               string          `db:"party"`
	Currency            string          `db:"currency"`
	Date                time.Time       `db:"date"`
	NumberSeries        string          `db:"number_series"`
	Submitted           bool            `db:"submitted"`
	Cancelled           bool            `db:"cancelled"`
	IsReturn            bool            `db:"is_return"`
	ReturnAgainst       *string         `db:"return_against"` // Nullable self FK
	ReturnCompleted     bool            `db:"return_completed"`
	NetTotal            decimal.Decimal `db:"net_total"`
	GrandTotal          decimal.Decimal `db:"grand_total"`
	BaseGrandTotal      decimal.Decimal `db:"base_grand_total"`
	OutstandingAmount   decimal.Decimal `db:"outstanding_amount"`
	StockNotTransferred decimal.Decimal `db:"stock_not_transferred"`
	Timestamps
}

// InvoiceItem mirrors a row of the invoice_items table.
type InvoiceItem struct {
	SchemaName          string          `db:"schema_name"`
	Name                string          `db:"name"`
	Parent              string          `db:"parent"`
	Idx                 int             `db:"idx"`
	Item                string          `db:"item"`
	Quantity            decimal.Decimal `db:"quantity"`
	TransferQuantity    decimal.Decimal `db:"transfer_quantity"`
	Rate                decimal.Decimal `db:"rate"`
	Amount              decimal.Decimal `db:"amount"`
	StockNotTransferred decimal.Decimal `db:"stock_not_transferred"`
}
