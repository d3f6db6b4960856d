package domain

// Status is the derived lifecycle status of a document. It is never stored.
type Status string

const (
	StatusNone             Status = ""
	StatusDraft            Status = "Draft"
	StatusNotSaved         Status = "NotSaved"
	StatusSaved            Status = "Saved"
	StatusSubmitted        Status = "Submitted"
	StatusCancelled        Status = "Cancelled"
	StatusUnpaid           Status = "Unpaid"
	StatusPaid             Status = "Paid"
	StatusPartlyPaid       Status = "PartlyPaid"
	StatusReturn           Status = "Return"
	StatusCreditNoteIssued Status = "CreditNoteIssued"
	StatusDebitNoteIssued  Status = "DebitNoteIssued"
)

// Color names used by the presentation layer.
const (
	ColorGray   = "gray"
	ColorOrange = "orange"
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorBlue   = "blue"
)

// AllStatuses lists every status the resolver can produce for a non-nil snapshot.
var AllStatuses = []Status{
	StatusDraft,
	StatusNotSaved,
	StatusSaved,
	StatusSubmitted,
	StatusCancelled,
	StatusUnpaid,
	StatusPaid,
	StatusPartlyPaid,
	StatusReturn,
	StatusCreditNoteIssued,
	StatusDebitNoteIssued,
}

var statusColors = map[Status]string{
	StatusNone:             ColorGray,
	StatusDraft:            ColorGray,
	StatusSaved:            ColorGray,
	StatusNotSaved:         ColorGray,
	StatusReturn:           ColorGray,
	StatusCreditNoteIssued: ColorGray,
	StatusDebitNoteIssued:  ColorGray,
	StatusUnpaid:           ColorOrange,
	StatusPartlyPaid:       ColorOrange,
	StatusPaid:             ColorGreen,
	StatusSubmitted:        ColorGreen,
	StatusCancelled:        ColorRed,
}

var statusLabels = map[Status]string{
	StatusDraft:            "Draft",
	StatusSaved:            "Saved",
	StatusNotSaved:         "Not Saved",
	StatusSubmitted:        "Submitted",
	StatusCancelled:        "Cancelled",
	StatusPaid:             "Paid",
	StatusUnpaid:           "Unpaid",
	StatusReturn:           "Return",
	StatusCreditNoteIssued: "Credit Note Issued",
	StatusDebitNoteIssued:  "Debit Note Issued",
	StatusPartlyPaid:       "Partly Paid",
}

// Color returns the badge color for the status. Unknown statuses are gray.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorGray
}

// Label returns the display text for the status, or "" when unknown.
func (s Status) Label() string {
	return statusLabels[s]
}

// IsValid reports whether s is one of the enumerated statuses (StatusNone included).
func (s Status) IsValid() bool {
	_, ok := statusColors[s]
	return ok
}

// StatusBadge is the presentation bundle for a status.
type StatusBadge struct {
	Status Status `json:"status"`
	Color  string `json:"color"`
	Label  string `json:"label"`
}

// Badge builds the StatusBadge for s.
func (s Status) Badge() StatusBadge {
	return StatusBadge{Status: s, Color: s.Color(), Label: s.Label()}
}
