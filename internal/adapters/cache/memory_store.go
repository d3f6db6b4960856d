package cache

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/books_core/internal/core/ports/repositories"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is the default expiration time for cache entries
const DefaultExpiration = 24 * time.Hour

// DefaultCleanupInterval is how often expired items are removed from the cache
const DefaultCleanupInterval = 1 * time.Hour

// MemoryStore implements KeyValueStore using github.com/patrickmn/go-cache.
// It is safe for concurrent use and lives as long as the process.
type MemoryStore struct {
	cache      *goCache.Cache
	expiration time.Duration
}

// NewMemoryStore creates a store whose entries expire after expiration.
// Pass goCache.NoExpiration (-1) to keep entries forever.
func NewMemoryStore(expiration, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache:      goCache.New(expiration, cleanupInterval),
		expiration: expiration,
	}
}

// NewDefaultMemoryStore creates a store with DefaultExpiration and DefaultCleanupInterval.
func NewDefaultMemoryStore() *MemoryStore {
	return NewMemoryStore(DefaultExpiration, DefaultCleanupInterval)
}

var _ portsrepo.KeyValueStore = (*MemoryStore)(nil)

// Get retrieves a value from the cache
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("cache entry %s holds %T, not a string", key, raw)
	}
	return value, true, nil
}

// Set adds a value to the cache with the store's expiration
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.cache.Set(key, value, s.expiration)
	return nil
}

// Delete removes a key from the cache
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// ItemCount returns the number of entries, expired ones included until cleanup runs.
func (s *MemoryStore) ItemCount() int {
	return s.cache.ItemCount()
}
