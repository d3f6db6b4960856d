package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/books_core/internal/apperrors"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSinglesRepository struct {
	BaseRepository
}

func newPgxSinglesRepository(pool *pgxpool.Pool) portsrepo.SinglesReader {
	return &PgxSinglesRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SinglesReader = (*PgxSinglesRepository)(nil)

// GetSingleValue reads one field of a single. A missing row or a NULL value reports not found.
func (r *PgxSinglesRepository) GetSingleValue(ctx context.Context, parent, field string) (string, bool, error) {
	var value *string
	err := r.Pool.QueryRow(ctx, `SELECT value FROM singles WHERE parent = $1 AND field = $2;`, parent, field).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperrors.NewAppError(500, "failed to read single value", err)
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}
