package repositories

import "context"

// SinglesReader reads values of single (one-off settings) records such as Defaults.
type SinglesReader interface {
	// GetSingleValue returns the value of field on the single parent, and whether it is set.
	GetSingleValue(ctx context.Context, parent, field string) (string, bool, error)
}
