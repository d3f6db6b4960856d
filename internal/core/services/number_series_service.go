package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_core/internal/core/domain"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
)

type numberSeriesService struct {
	BaseService
	singles portsrepo.SinglesReader
}

// NewNumberSeriesService creates a new number series service
func NewNumberSeriesService(singles portsrepo.SinglesReader) portssvc.NumberSeriesSvc {
	return &numberSeriesService{singles: singles}
}

var _ portssvc.NumberSeriesSvc = (*numberSeriesService)(nil)

// GetNumberSeries prefers the series configured on the Defaults single, then the schema default.
func (s *numberSeriesService) GetNumberSeries(ctx context.Context, schema domain.SchemaName) (string, bool, error) {
	meta, ok := domain.LookupSchema(schema)
	if !ok || meta.NumberSeriesKey == "" {
		return "", false, nil
	}

	value, found, err := s.singles.GetSingleValue(ctx, domain.DefaultsSingle, meta.NumberSeriesKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s.%s: %w", domain.DefaultsSingle, meta.NumberSeriesKey, err)
	}
	if found && value != "" {
		return value, true, nil
	}

	if meta.NumberSeriesDefault == "" {
		return "", false, nil
	}
	return meta.NumberSeriesDefault, true, nil
}
