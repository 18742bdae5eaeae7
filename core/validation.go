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

import "fmt"

// ValidateVocabItem validates a VocabItem according to domain rules.
//
// Validation rules:
//   - Word must not be empty
//   - Reading must not be empty
//
// NOT validated (optional source data):
//   - Romaji, MeaningVI, Chapter, SubCategory, Example
func ValidateVocabItem(item *VocabItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidItem)
	}

	if item.Word == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyWord)
	}

	if item.Reading == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyReading)
	}

	return nil
}

// ValidateResultStatus validates that a ResultStatus has a valid value.
func ValidateResultStatus(status ResultStatus) error {
	switch status {
	case StatusNotAttempted, StatusSuccess, StatusUnavailable:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidStatus, status)
	}
}

// ValidateCheckpoint validates a Checkpoint according to domain rules.
//
// Validation rules:
//   - Processed must not be negative
//   - SourceDigest must not be empty
func ValidateCheckpoint(checkpoint *Checkpoint) error {
	if checkpoint == nil {
		return fmt.Errorf("%w: checkpoint is nil", ErrInvalidCheckpoint)
	}

	if checkpoint.Processed < 0 {
		return fmt.Errorf("%w: negative processed count %d", ErrInvalidCheckpoint, checkpoint.Processed)
	}

	if checkpoint.SourceDigest == "" {
		return fmt.Errorf("%w: missing source digest", ErrInvalidCheckpoint)
	}

	return nil
}
