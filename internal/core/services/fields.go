package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// decimalField reads a numeric column out of a FieldMap. A missing or null value reads as zero.
func decimalField(m portsrepo.FieldMap, key string) (decimal.Decimal, error) {
	switch v := m[key].(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, nil
		}
		return *v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("field %s: %w", key, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, fmt.Errorf("field %s has unsupported type %T", key, v)
	}
}
