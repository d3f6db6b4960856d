package mapping

import (
	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/SscSPs/books_core/internal/models"
	"github.com/samber/lo"
)

// ToDomainSnapshot converts a persisted invoice and its items to a domain Snapshot.
// Persisted rows are never NotInserted or Dirty.
func ToDomainSnapshot(m models.Invoice, items []models.InvoiceItem) domain.Snapshot {
	return domain.Snapshot{
		SchemaName:          domain.SchemaName(m.SchemaName),
		Name:                m.Name,
		Submitted:           m.Submitted,
		Cancelled:           m.Cancelled,
		IsReturn:            m.IsReturn,
		ReturnAgainst:       lo.FromPtr(m.ReturnAgainst),
		ReturnCompleted:     m.ReturnCompleted,
		Party:               m.Party,
		Currency:            m.Currency,
		Date:                m.Date,
		NumberSeries:        m.NumberSeries,
		NetTotal:            m.NetTotal,
		GrandTotal:          m.GrandTotal,
		BaseGrandTotal:      m.BaseGrandTotal,
		OutstandingAmount:   m.OutstandingAmount,
		StockNotTransferred: m.StockNotTransferred,
		Items:               ToDomainLineItems(items),
	}
}

// ToDomainLineItem converts a model InvoiceItem to a domain LineItem
func ToDomainLineItem(m models.InvoiceItem) domain.LineItem {
	return domain.LineItem{
		Name:                m.Name,
		Parent:              m.Parent,
		Item:                m.Item,
		Quantity:            m.Quantity,
		TransferQuantity:    m.TransferQuantity,
		Rate:                m.Rate,
		Amount:              m.Amount,
		StockNotTransferred: m.StockNotTransferred,
	}
}

// ToDomainLineItems converts a slice of model InvoiceItems
func ToDomainLineItems(ms []models.InvoiceItem) []domain.LineItem {
	return lo.Map(ms, func(m models.InvoiceItem, _ int) domain.LineItem {
		return ToDomainLineItem(m)
	})
}
