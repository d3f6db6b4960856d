package domain

// AccountRootType defines the fundamental accounting type of an account.
type AccountRootType string

const (
	Asset     AccountRootType = "Asset"
	Liability AccountRootType = "Liability"
	Equity    AccountRootType = "Equity"
	Income    AccountRootType = "Income"
	Expense   AccountRootType = "Expense"
)

// IsCredit reports whether accounts of this root type carry a credit-normal balance.
// Unknown root types count as credit.
func (t AccountRootType) IsCredit() bool {
	switch t {
	case Asset, Expense:
		return false
	default:
		return true
	}
}
