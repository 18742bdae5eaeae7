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


package mock

import (
	"context"
	"sync"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// MockProvider is a test double for provider.Provider.
// It allows custom behavior injection via function fields.
type MockProvider struct {
	// ProviderName is returned by Name. Defaults to "mock".
	ProviderName string

	// IsRemote is returned by Remote.
	IsRemote bool

	// FetchFunc is called by Fetch if set.
	// If nil, uses default deterministic behavior.
	FetchFunc func(ctx context.Context, item core.VocabItem) (*core.Payload, error)

	mu        sync.Mutex
	callCount int
}

var _ provider.Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockProvider(name string, remote bool) *MockProvider {
	return &MockProvider{
		ProviderName: name,
		IsRemote:     remote,
	}
}

// Name returns the configured provider name.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Remote returns the configured remoteness.
func (m *MockProvider) Remote() bool {
	return m.IsRemote
}

// Fetch returns a deterministic payload derived from the item, or delegates
// to FetchFunc when set. Safe for concurrent use.
func (m *MockProvider) Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, item)
	}

	return &core.Payload{Text: m.Name() + ":" + item.Key()}, nil
}

// CallCount returns how many times Fetch has been invoked.
// This allows tests to assert on outbound call behavior.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
