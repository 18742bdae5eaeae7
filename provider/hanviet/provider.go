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

// Package hanviet resolves Sino-Vietnamese readings for the kanji of a word
// from an offline character map.
package hanviet

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "hanviet"

//go:embed data.json
var defaultMap []byte

// Map holds per-character Sino-Vietnamese readings.
type Map map[string]string

// LoadMap reads a character map from a JSON file. A top-level "_comment"
// key is tolerated and dropped.
func LoadMap(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hanviet map: %w", err)
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing hanviet map: %w", err)
	}
	delete(m, "_comment")
	return m, nil
}

// Provider resolves readings from the in-memory map. It never performs
// network access.
type Provider struct {
	readings Map
}

var _ provider.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithMap replaces the built-in character map.
func WithMap(m Map) Option {
	return func(p *Provider) {
		p.readings = m
	}
}

// New creates a Sino-Vietnamese reading provider backed by the built-in map.
func New(opts ...Option) *Provider {
	var m Map
	if err := json.Unmarshal(defaultMap, &m); err != nil {
		panic(fmt.Sprintf("built-in hanviet map is invalid: %v", err))
	}
	delete(m, "_comment")
	p := &Provider{readings: m}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider name.
func (p *Provider) Name() string { return Name }

// Remote reports that hanviet lookups never leave the process.
func (p *Provider) Remote() bool { return false }

// Fetch joins the readings of every mapped character in the word with
// spaces. Characters without an entry are skipped; a word with no mapped
// characters is a permanent not-found outcome.
func (p *Provider) Fetch(_ context.Context, item core.VocabItem) (*core.Payload, error) {
	var parts []string
	for _, r := range item.Word {
		if reading, ok := p.readings[string(r)]; ok {
			parts = append(parts, reading)
		}
	}
	if len(parts) == 0 {
		return nil, provider.ErrNotFound
	}
	return &core.Payload{Text: strings.Join(parts, " ")}, nil
}
