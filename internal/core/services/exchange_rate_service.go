package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// exchangeRateService implements the ExchangeRateSvcFacade interface
type exchangeRateService struct {
	BaseService
	cache    portsrepo.KeyValueStore
	provider portssvc.RateProvider // nil disables remote lookups
	location *time.Location
	now      func() time.Time
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithRateProvider enables remote lookups through provider.
func WithRateProvider(provider portssvc.RateProvider) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.provider = provider
	}
}

// WithLocation sets the time zone used to pick "today" when no date is given.
func WithLocation(loc *time.Location) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a new exchange rate service backed by cache.
// Without WithRateProvider every lookup answers 1.
func NewExchangeRateService(cache portsrepo.KeyValueStore, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		cache:    cache,
		location: time.Local,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure exchangeRateService implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetExchangeRate resolves from -> to on date (today when nil).
// Order: cache, then the remote provider, then 1. The answer is always written back to the cache.
// A cached 0 or 1 is not trusted, so a past fallback is retried on the next call.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, from, to string, date *time.Time) domain.ExchangeRate {
	rate := domain.ExchangeRate{From: from, To: to, Date: s.dateKey(date)}

	if s.provider == nil || from == to {
		rate.Rate = one
		rate.Source = domain.RateSourceIdentity
		return rate
	}

	key := domain.ExchangeRateCacheKey(rate.Date, from, to)
	if cached, ok := s.cachedRate(ctx, key); ok {
		rate.Rate = cached
		rate.Source = domain.RateSourceCache
		return rate
	}

	fetched, err := s.fetch(ctx, rate.Date, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rate, falling back to 1",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("date", rate.Date))
		rate.Rate = one
		rate.Source = domain.RateSourceFallback
	} else {
		rate.Rate = fetched
		rate.Source = domain.RateSourceRemote
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rate.Rate.String()); err != nil {
			s.LogWarn(ctx, "Failed to cache exchange rate", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return rate
}

// ClearExchangeRate drops the cache slot so the next lookup goes to the provider.
func (s *exchangeRateService) ClearExchangeRate(ctx context.Context, from, to string, date *time.Time) error {
	if s.cache == nil {
		return nil
	}
	key := domain.ExchangeRateCacheKey(s.dateKey(date), from, to)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to clear exchange rate", slog.String("key", key))
		return fmt.Errorf("failed to clear exchange rate %s: %w", key, err)
	}
	return nil
}

func (s *exchangeRateService) dateKey(date *time.Time) string {
	if date != nil {
		return date.Format(domain.RateDateLayout)
	}
	return s.now().In(s.location).Format(domain.RateDateLayout)
}

func (s *exchangeRateService) cachedRate(ctx context.Context, key string) (decimal.Decimal, bool) {
	if s.cache == nil {
		return decimal.Zero, false
	}

	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.LogWarn(ctx, "Failed to read cached exchange rate", slog.String("key", key), slog.String("error", err.Error()))
		return decimal.Zero, false
	}
	if !ok {
		return decimal.Zero, false
	}

	rate, err := decimal.NewFromString(value)
	if err != nil || rate.IsZero() || rate.Equal(one) {
		return decimal.Zero, false
	}
	return rate, true
}

func (s *exchangeRateService) fetch(ctx context.Context, date, from, to string) (decimal.Decimal, error) {
	rate, err := s.provider.FetchRate(ctx, date, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, errors.New("provider returned a non-positive rate")
	}
	return rate, nil
}
