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


// Package storage provides the storage abstraction layer for kotoba.
//
// This package defines store interfaces that decouple storage implementation
// from the enrichment pipeline. It allows for different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple backends:
//
//	cache, err := badger.NewCacheStore(backend)  // returns storage.CacheStore
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Architecture
//
//   - CacheStore: one durable key/value namespace per enrichment provider,
//     keyed by canonical item identity and shared across runs
//   - CheckpointStore: the single-writer record of pipeline progress plus the
//     accumulated enriched records, appended strictly in collection order
//
// # Thread Safety
//
// All store implementations must be thread-safe. Cache keys are independent,
// so concurrent provider calls for different items may read and write the
// cache simultaneously. The checkpoint store assumes a single writing
// pipeline run at a time.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
