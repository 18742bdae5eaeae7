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


package provider

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the source has no data for the item. It is a
// definitive answer, never retried, and is cached by callers the same way a
// success would be so the source is not asked again.
var ErrNotFound = errors.New("no data for item")

// TransientError marks a failure that may succeed on retry, such as a
// network timeout or a rate-limit rejection from the upstream service.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// MarkTransient wraps err as a TransientError. Returns nil for a nil err.
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err is marked transient.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
