// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enrich

import "errors"

var (
	// ErrCacheStoreRequired is returned when no cache store is provided.
	ErrCacheStoreRequired = errors.New("cache store is required")

	// ErrNoProviders is returned when the provider set is empty.
	ErrNoProviders = errors.New("at least one provider is required")

	// ErrInvalidMaxAttempts is returned when the retry budget is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")
)
