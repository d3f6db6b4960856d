package services

import (
	"context"
	"time"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rates
type ExchangeRateReaderSvc interface {
	// GetExchangeRate resolves the rate for a currency pair. It never fails; see domain.RateSource.
	GetExchangeRate(ctx context.Context, from, to string, date *time.Time) domain.ExchangeRate
}

// ExchangeRateWriterSvc defines write operations for exchange rates
type ExchangeRateWriterSvc interface {
	// ClearExchangeRate drops the cached slot for a currency pair and date.
	ClearExchangeRate(ctx context.Context, from, to string, date *time.Time) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// RateProvider fetches a live rate from a remote source.
type RateProvider interface {
	FetchRate(ctx context.Context, date, from, to string) (decimal.Decimal, error)
}
