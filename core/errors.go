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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidItem indicates a VocabItem failed validation.
	ErrInvalidItem = errors.New("invalid vocabulary item")

	// ErrEmptyWord indicates the Word field is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrEmptyReading indicates the Reading field is empty.
	ErrEmptyReading = errors.New("reading cannot be empty")

	// ErrInvalidStatus indicates an invalid ResultStatus value.
	ErrInvalidStatus = errors.New("invalid result status")

	// ErrInvalidCheckpoint indicates a Checkpoint failed validation.
	ErrInvalidCheckpoint = errors.New("invalid checkpoint")

	// ErrEmptyCollection indicates a Collection has no items.
	ErrEmptyCollection = errors.New("collection has no items")
)
