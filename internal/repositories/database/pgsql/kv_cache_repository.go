package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/books_core/internal/apperrors"
	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxKVCacheRepository keeps key/value cache entries in the kv_cache table so they
// survive restarts and are shared between instances.
type PgxKVCacheRepository struct {
	BaseRepository
}

// NewKVCacheRepository creates a Postgres backed KeyValueStore.
func NewKVCacheRepository(pool *pgxpool.Pool) portsrepo.KeyValueStore {
	return &PgxKVCacheRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.KeyValueStore = (*PgxKVCacheRepository)(nil)

func (r *PgxKVCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.Pool.QueryRow(ctx, `SELECT value FROM kv_cache WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperrors.NewAppError(500, "failed to read cache entry", err)
	}
	return value, true, nil
}

func (r *PgxKVCacheRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO kv_cache (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`, key, value)
	if err != nil {
		return apperrors.NewAppError(500, "failed to write cache entry", err)
	}
	return nil
}

func (r *PgxKVCacheRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM kv_cache WHERE key = $1;`, key); err != nil {
		return apperrors.NewAppError(500, "failed to delete cache entry", err)
	}
	return nil
}
