package domain

// statusRule is one row of the invoice precedence table.
type statusRule struct {
	matches func(s *Snapshot) bool
	status  Status
}

// invoiceStatusRules are evaluated top to bottom; the first match wins.
// The last row always matches so the table is total.
var invoiceStatusRules = []statusRule{
	{
		matches: func(s *Snapshot) bool {
			return s.SchemaName == SalesInvoice && s.ReturnCompleted && !s.Cancelled
		},
		status: StatusCreditNoteIssued,
	},
	{
		matches: func(s *Snapshot) bool {
			return s.SchemaName == PurchaseInvoice && s.ReturnCompleted && !s.Cancelled
		},
		status: StatusDebitNoteIssued,
	},
	{
		matches: func(s *Snapshot) bool { return s.IsSubmitted() && s.IsReturn },
		status:  StatusReturn,
	},
	{
		matches: func(s *Snapshot) bool { return s.IsSubmitted() && s.OutstandingAmount.IsZero() },
		status:  StatusPaid,
	},
	{
		matches: func(s *Snapshot) bool {
			return s.IsSubmitted() && s.OutstandingAmount.LessThan(s.GrandTotal)
		},
		status: StatusPartlyPaid,
	},
	{
		matches: func(s *Snapshot) bool { return s.IsSubmitted() && s.OutstandingAmount.IsPositive() },
		status:  StatusUnpaid,
	},
	{
		matches: func(s *Snapshot) bool { return s.Cancelled },
		status:  StatusCancelled,
	},
	{
		matches: func(*Snapshot) bool { return true },
		status:  StatusSaved,
	},
}

// ResolveStatus projects a snapshot onto its lifecycle status.
// A nil snapshot resolves to StatusNone. The snapshot is never modified.
func ResolveStatus(s *Snapshot) Status {
	switch {
	case s == nil:
		return StatusNone
	case s.NotInserted:
		return StatusDraft
	case s.Dirty:
		return StatusNotSaved
	case !s.SchemaName.IsSubmittable():
		return StatusSaved
	case s.SchemaName.IsInvoice():
		return resolveInvoiceStatus(s)
	case s.Submitted && !s.Cancelled:
		return StatusSubmitted
	case s.Submitted && s.Cancelled:
		return StatusCancelled
	default:
		return StatusSaved
	}
}

func resolveInvoiceStatus(s *Snapshot) Status {
	for _, rule := range invoiceStatusRules {
		if rule.matches(s) {
			return rule.status
		}
	}
	return StatusSaved
}
