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


package storage

import "errors"

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrCorruptCheckpoint indicates persisted checkpoint state that cannot
	// be decoded or is internally inconsistent. It is surfaced to the
	// operator, never silently discarded; force-restart is the resolution.
	ErrCorruptCheckpoint = errors.New("corrupt checkpoint")

	// ErrCheckpointMismatch indicates a checkpoint written for a different
	// input collection than the one being resumed.
	ErrCheckpointMismatch = errors.New("checkpoint does not match input collection")

	// ErrOutOfOrderAppend indicates an attempt to persist a record out of
	// collection order, which would create an undetectable gap on resume.
	ErrOutOfOrderAppend = errors.New("record appended out of collection order")
)
