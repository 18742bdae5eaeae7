// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/storage"
)

// CheckpointStore implements storage.CheckpointStore for BadgerDB.
type CheckpointStore struct {
	backend *Backend
	mu      sync.Mutex // serializes appends; checkpoint state is single-writer
}

var _ storage.CheckpointStore = (*CheckpointStore)(nil)

// NewCheckpointStore creates a new CheckpointStore.
func NewCheckpointStore(backend *Backend) *CheckpointStore {
	return &CheckpointStore{
		backend: backend,
	}
}

// Load retrieves the persisted checkpoint.
// Returns nil, nil if no checkpoint exists.
func (s *CheckpointStore) Load(ctx context.Context) (*core.Checkpoint, error) {
	var checkpoint *core.Checkpoint
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCheckpointKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			checkpoint, unmarshalErr = storage.UnmarshalCheckpoint(val)
			if unmarshalErr != nil {
				return fmt.Errorf("%w: %w", storage.ErrCorruptCheckpoint, unmarshalErr)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}

	if checkpoint != nil {
		if err := core.ValidateCheckpoint(checkpoint); err != nil {
			return nil, fmt.Errorf("%w: %w", storage.ErrCorruptCheckpoint, err)
		}
	}

	return checkpoint, nil
}

// AppendRecord atomically persists the record at the given collection index
// and advances the checkpoint. Record and checkpoint are written in one
// transaction: either both land or neither does.
func (s *CheckpointStore) AppendRecord(ctx context.Context, index int, record *core.Record, sourceDigest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.backend.WithTx(func(tx *badger.Txn) error {
		processed := 0
		item, err := tx.Get(makeCheckpointKey())
		if err == nil {
			valErr := item.Value(func(val []byte) error {
				current, unmarshalErr := storage.UnmarshalCheckpoint(val)
				if unmarshalErr != nil {
					return fmt.Errorf("%w: %w", storage.ErrCorruptCheckpoint, unmarshalErr)
				}
				if current.SourceDigest != sourceDigest {
					return fmt.Errorf("%w: have %s, appending for %s",
						storage.ErrCheckpointMismatch, current.SourceDigest, sourceDigest)
				}
				processed = current.Processed
				return nil
			})
			if valErr != nil {
				return valErr
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		// The processed prefix must stay gap-free: only the next index may land.
		if index != processed {
			return fmt.Errorf("%w: index %d, next expected %d",
				storage.ErrOutOfOrderAppend, index, processed)
		}

		if err := tx.Set(makeRecordKey(index), storage.MarshalRecord(record)); err != nil {
			return err
		}

		checkpoint := &core.Checkpoint{
			SourceDigest: sourceDigest,
			Processed:    index + 1,
			UpdatedAt:    time.Now().UTC(),
		}
		if err := tx.Set(makeCheckpointKey(), storage.MarshalCheckpoint(checkpoint)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// LoadRecords retrieves the first n accumulated records in collection order.
func (s *CheckpointStore) LoadRecords(ctx context.Context, n int) ([]*core.Record, error) {
	records := make([]*core.Record, 0, n)
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for i := 0; i < n; i++ {
			item, err := tx.Get(makeRecordKey(i))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					return fmt.Errorf("%w: record %d missing below processed count %d",
						storage.ErrCorruptCheckpoint, i, n)
				}
				return err
			}

			err = item.Value(func(val []byte) error {
				record, unmarshalErr := storage.UnmarshalRecord(val)
				if unmarshalErr != nil {
					return fmt.Errorf("%w: record %d: %w",
						storage.ErrCorruptCheckpoint, i, unmarshalErr)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Reset discards the checkpoint and all accumulated records. Cache entries
// survive: they are keyed by item identity, not by run.
// The checkpoint goes first: a crash in between leaves orphan records that
// the next run overwrites in order, never a checkpoint pointing at records
// that are gone.
func (s *CheckpointStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCheckpointKey()); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	// DropPrefix is not bounded by the transaction size limit, so resetting
	// a large collection cannot fail on too many deletes.
	return s.backend.DropPrefix([]byte(enrichedRecPrefix + ":"))
}

// Close is a no-op; the shared backend owns the database lifecycle.
func (s *CheckpointStore) Close() error {
	return nil
}
