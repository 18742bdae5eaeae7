package storage

import (
	"context"

	"github.com/poiesic/kotoba/core"
)

// CacheStore is the durable per-source cache. Entries are keyed by the
// canonical (provider, item identity) key only, never by run or input
// document, so a cached payload written during one run is visible to every
// later run and every other vocabulary file.
// Implementations must be thread-safe: different items may be read and
// written concurrently since every key is independent.
type CacheStore interface {
	// Get returns the cached entry for the provider/item pair.
	// Returns nil, nil when no entry exists (a miss is not an error).
	Get(ctx context.Context, provider string, item core.VocabItem) (*core.CacheEntry, error)

	// Put durably writes the entry for the provider/item pair,
	// overwriting any previous value for the same key.
	Put(ctx context.Context, provider string, item core.VocabItem, entry *core.CacheEntry) error

	// Close closes the store and releases resources.
	Close() error
}

// CheckpointStore is the durable record of pipeline progress: the checkpoint
// itself plus the accumulated enriched records, indexed by collection
// position. Only one pipeline run may mutate a given store at a time.
type CheckpointStore interface {
	// Load retrieves the persisted checkpoint.
	// Returns nil, nil if no checkpoint exists.
	// Returns ErrCorruptCheckpoint if persisted state cannot be decoded.
	Load(ctx context.Context) (*core.Checkpoint, error)

	// AppendRecord atomically persists the record for the given collection
	// index and advances the checkpoint to Processed = index+1. Either both
	// are written or neither is. Returns ErrOutOfOrderAppend unless index
	// equals the current Processed count: records are persisted strictly in
	// collection order so the processed prefix never has gaps.
	AppendRecord(ctx context.Context, index int, record *core.Record, sourceDigest string) error

	// LoadRecords retrieves the first n accumulated records in collection
	// order. Returns ErrCorruptCheckpoint if any expected record is missing
	// or cannot be decoded.
	LoadRecords(ctx context.Context, n int) ([]*core.Record, error)

	// Reset discards the checkpoint and all accumulated records.
	// Cache entries are not touched: they are keyed by item identity and
	// remain valid across restarts.
	Reset(ctx context.Context) error

	// Close closes the store and releases resources.
	Close() error
}
