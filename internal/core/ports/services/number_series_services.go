package services

import (
	"context"

	"github.com/SscSPs/books_core/internal/core/domain"
)

// NumberSeriesSvc resolves the default number series of a schema
type NumberSeriesSvc interface {
	// GetNumberSeries returns the configured or default series, and false when the schema has none.
	GetNumberSeries(ctx context.Context, schema domain.SchemaName) (string, bool, error)
}
