package pgsql

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/books_core/internal/apperrors"
	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type columnKind int

const (
	kindText columnKind = iota
	kindNullableText
	kindBool
	kindNumeric
	kindDate
	kindInt
)

type column struct {
	name     string
	kind     columnKind
	writable bool // may be set through UpdateRecord
}

// recordTable maps a schema's field names onto a physical table.
// Both invoice schemas share one table and are told apart by schema_name.
type recordTable struct {
	table      string
	schemaName domain.SchemaName
	orderBy    string
	columns    map[string]column
}

var invoiceColumns = map[string]column{
	"name":                {name: "name", kind: kindText},
	"party":               {name: "party", kind: kindText},
	"currency":            {name: "currency", kind: kindText},
	"date":                {name: "date", kind: kindDate},
	"numberSeries":        {name: "number_series", kind: kindText},
	"submitted":           {name: "submitted", kind: kindBool, writable: true},
	"cancelled":           {name: "cancelled", kind: kindBool, writable: true},
	"isReturn":            {name: "is_return", kind: kindBool},
	"returnAgainst":       {name: "return_against", kind: kindNullableText},
	"returnCompleted":     {name: "return_completed", kind: kindBool, writable: true},
	"netTotal":            {name: "net_total", kind: kindNumeric},
	"grandTotal":          {name: "grand_total", kind: kindNumeric},
	"baseGrandTotal":      {name: "base_grand_total", kind: kindNumeric},
	"outstandingAmount":   {name: "outstanding_amount", kind: kindNumeric, writable: true},
	"stockNotTransferred": {name: "stock_not_transferred", kind: kindNumeric, writable: true},
}

var invoiceItemColumns = map[string]column{
	"name":                {name: "name", kind: kindText},
	"parent":              {name: "parent", kind: kindText},
	"idx":                 {name: "idx", kind: kindInt},
	"item":                {name: "item", kind: kindText},
	"quantity":            {name: "quantity", kind: kindNumeric},
	"transferQuantity":    {name: "transfer_quantity", kind: kindNumeric},
	"rate":                {name: "rate", kind: kindNumeric},
	"amount":              {name: "amount", kind: kindNumeric},
	"stockNotTransferred": {name: "stock_not_transferred", kind: kindNumeric, writable: true},
}

// resolveRecordTable accepts an invoice schema ("SalesInvoice") or its item table ("SalesInvoiceItem").
func resolveRecordTable(schema string) (recordTable, error) {
	if name := domain.SchemaName(schema); name.IsInvoice() {
		return recordTable{table: "invoices", schemaName: name, orderBy: "name", columns: invoiceColumns}, nil
	}
	if parent, ok := strings.CutSuffix(schema, "Item"); ok && domain.SchemaName(parent).IsInvoice() {
		return recordTable{table: "invoice_items", schemaName: domain.SchemaName(parent), orderBy: "parent, idx", columns: invoiceItemColumns}, nil
	}
	return recordTable{}, apperrors.NewValidationError(fmt.Sprintf("unknown record schema %q", schema))
}

// selectFields validates the requested fields. No fields means all of them, sorted by name.
func (t recordTable) selectFields(fields []string) ([]string, error) {
	if len(fields) == 0 {
		all := lo.Keys(t.columns)
		slices.Sort(all)
		return all, nil
	}
	for _, f := range fields {
		if _, ok := t.columns[f]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown field %q on %s", f, t.table))
		}
	}
	return fields, nil
}

func newScanTarget(kind columnKind) any {
	switch kind {
	case kindNullableText:
		return new(*string)
	case kindBool:
		return new(bool)
	case kindNumeric:
		return new(decimal.Decimal)
	case kindDate:
		return new(time.Time)
	case kindInt:
		return new(int)
	default:
		return new(string)
	}
}

// scannedValue unwraps a scan target into the plain value stored in a FieldMap.
func scannedValue(target any) any {
	switch v := target.(type) {
	case **string:
		if *v == nil {
			return nil
		}
		return **v
	case *bool:
		return *v
	case *decimal.Decimal:
		return *v
	case *time.Time:
		return *v
	case *int:
		return *v
	case *string:
		return *v
	default:
		return nil
	}
}
