package dto

import (
	"time"

	"github.com/SscSPs/books_core/internal/core/domain"
)

// ExchangeRateURI binds the currency pair of exchange rate routes.
type ExchangeRateURI struct {
	From string `uri:"from" binding:"required,currency_code"`
	To   string `uri:"to" binding:"required,currency_code"`
}

// ExchangeRateQuery binds the optional ?date= parameter.
type ExchangeRateQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ParsedDate returns the requested date, or nil for "today".
func (q ExchangeRateQuery) ParsedDate() (*time.Time, error) {
	if q.Date == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.RateDateLayout, q.Date)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
