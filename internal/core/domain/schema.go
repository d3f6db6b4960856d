package domain

// SchemaName identifies a document type (the "doctype" of a record).
type SchemaName string

const (
	SalesInvoice    SchemaName = "SalesInvoice"
	PurchaseInvoice SchemaName = "PurchaseInvoice"
	Payment         SchemaName = "Payment"
	JournalEntry    SchemaName = "JournalEntry"
	StockMovement   SchemaName = "StockMovement"
	Shipment        SchemaName = "Shipment"
	PurchaseReceipt SchemaName = "PurchaseReceipt"
	Party           SchemaName = "Party"
	Item            SchemaName = "Item"
)

// Schema holds the metadata the core needs about a document type.
type Schema struct {
	Name                SchemaName
	IsSubmittable       bool   // has a draft -> submitted -> cancelled workflow
	NumberSeriesDefault string // default of the numberSeries field, empty if the schema has none
	NumberSeriesKey     string // field of the Defaults single holding the configured series
}

// DefaultsSingle is the singles record holding per-schema defaults.
const DefaultsSingle = "Defaults"

var schemas = map[SchemaName]Schema{
	SalesInvoice:    {Name: SalesInvoice, IsSubmittable: true, NumberSeriesDefault: "SINV-", NumberSeriesKey: "salesInvoiceNumberSeries"},
	PurchaseInvoice: {Name: PurchaseInvoice, IsSubmittable: true, NumberSeriesDefault: "PINV-", NumberSeriesKey: "purchaseInvoiceNumberSeries"},
	Payment:         {Name: Payment, IsSubmittable: true, NumberSeriesDefault: "PAY-", NumberSeriesKey: "paymentNumberSeries"},
	JournalEntry:    {Name: JournalEntry, IsSubmittable: true, NumberSeriesDefault: "JV-", NumberSeriesKey: "journalEntryNumberSeries"},
	StockMovement:   {Name: StockMovement, IsSubmittable: true, NumberSeriesDefault: "SMOV-", NumberSeriesKey: "stockMovementNumberSeries"},
	Shipment:        {Name: Shipment, IsSubmittable: true, NumberSeriesDefault: "SHPM-", NumberSeriesKey: "shipmentNumberSeries"},
	PurchaseReceipt: {Name: PurchaseReceipt, IsSubmittable: true, NumberSeriesDefault: "PREC-", NumberSeriesKey: "purchaseReceiptNumberSeries"},
	Party:           {Name: Party},
	Item:            {Name: Item},
}

// LookupSchema returns the registered schema metadata.
// Unknown schemas are reported as plain, non-submittable records.
func LookupSchema(name SchemaName) (Schema, bool) {
	s, ok := schemas[name]
	if !ok {
		return Schema{Name: name}, false
	}
	return s, true
}

// IsSubmittable reports whether documents of this schema can be submitted and cancelled.
func (n SchemaName) IsSubmittable() bool {
	s, _ := LookupSchema(n)
	return s.IsSubmittable
}

// IsInvoice reports whether the schema is one of the two invoice schemas.
func (n SchemaName) IsInvoice() bool {
	return n == SalesInvoice || n == PurchaseInvoice
}

// ItemSchema returns the child table schema holding the line items, e.g. SalesInvoiceItem.
func (n SchemaName) ItemSchema() string {
	return string(n) + "Item"
}
