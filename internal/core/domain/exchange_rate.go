package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateDateLayout is the layout of the date part of a rate lookup.
const RateDateLayout = "2006-01-02"

// RateSource records where an exchange rate value came from.
type RateSource string

const (
	RateSourceIdentity RateSource = "identity" // lookups disabled, rate is 1
	RateSourceCache    RateSource = "cache"
	RateSourceRemote   RateSource = "remote"
	RateSourceFallback RateSource = "fallback" // remote failed, rate is 1
)

// ExchangeRate represents a conversion rate from one currency to another on a given date.
type ExchangeRate struct {
	From   string          `json:"from"` // ISO 4217 code, e.g. "USD"
	To     string          `json:"to"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Rate   decimal.Decimal `json:"rate"`
	Source RateSource      `json:"source"`
}

// ExchangeRateCacheKey builds the cache slot key for a currency pair on a date.
func ExchangeRateCacheKey(date, from, to string) string {
	return fmt.Sprintf("currencyExchangeRate:%s:%s:%s", date, from, to)
}
