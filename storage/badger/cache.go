package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/storage"
)

// CacheStore implements storage.CacheStore for BadgerDB.
// All providers share one backend; each provider's entries live in their own
// key namespace.
type CacheStore struct {
	backend *Backend
}

var _ storage.CacheStore = (*CacheStore)(nil)

// NewCacheStore creates a new CacheStore.
func NewCacheStore(backend *Backend) *CacheStore {
	return &CacheStore{
		backend: backend,
	}
}

// Get returns the cached entry for the provider/item pair.
// Returns nil, nil when no entry exists.
func (s *CacheStore) Get(ctx context.Context, provider string, item core.VocabItem) (*core.CacheEntry, error) {
	var entry *core.CacheEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		dbItem, err := tx.Get(makeCacheKey(provider, item))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return dbItem.Value(func(val []byte) error {
			var unmarshalErr error
			entry, unmarshalErr = storage.UnmarshalCacheEntry(val)
			if unmarshalErr != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, unmarshalErr)
			}
			return nil
		})
	}, false)

	return entry, err
}

// Put durably writes the entry for the provider/item pair, overwriting any
// previous value. Identical keys always map to the same payload once written;
// the pipeline never invalidates entries.
func (s *CacheStore) Put(ctx context.Context, provider string, item core.VocabItem, entry *core.CacheEntry) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalCacheEntry(entry)
		if err := tx.Set(makeCacheKey(provider, item), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op; the shared backend owns the database lifecycle.
func (s *CacheStore) Close() error {
	return nil
}
