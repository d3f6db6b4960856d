package services

import (
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/SscSPs/books_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// provider may be nil, in which case exchange rates always resolve to 1.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider portssvc.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Invoice = NewInvoiceService(repos.InvoiceRepo)
	container.Returns = NewReturnDocumentService(repos.InvoiceRepo)
	container.Actions = NewInvoiceActionService(container.Returns)
	container.NumberSeries = NewNumberSeriesService(repos.SinglesRepo)

	rateOptions := []ExchangeRateOption{WithLocation(cfg.Location())}
	if provider != nil {
		rateOptions = append(rateOptions, WithRateProvider(provider))
	}
	container.ExchangeRate = NewExchangeRateService(repos.RateCache, rateOptions...)

	return container
}
