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

// Package pitch provides an offline pitch accent provider. Accent data
// comes from a JSON table mapping words to (reading, pattern) pairs, with
// a built-in table covering common vocabulary.
package pitch

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "pitch"

//go:embed data.json
var defaultTable []byte

// Accent is one accent entry for a word, a reading paired with its
// downstep position.
type Accent struct {
	Reading string
	Pattern int
}

// UnmarshalJSON decodes the compact ["reading", pattern] table form.
func (a *Accent) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &a.Reading); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &a.Pattern)
}

// Table maps a word's surface form to its known accents.
type Table map[string][]Accent

// LoadTable reads an accent table from a JSON file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pitch accent table: %w", err)
	}
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing pitch accent table: %w", err)
	}
	return table, nil
}

// Provider resolves pitch accents from the in-memory table. It never
// performs network access.
type Provider struct {
	table Table
}

var _ provider.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithTable replaces the built-in accent table.
func WithTable(table Table) Option {
	return func(p *Provider) {
		p.table = table
	}
}

// New creates a pitch accent provider backed by the built-in table.
func New(opts ...Option) *Provider {
	var table Table
	if err := json.Unmarshal(defaultTable, &table); err != nil {
		panic(fmt.Sprintf("built-in pitch accent table is invalid: %v", err))
	}
	p := &Provider{table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider name.
func (p *Provider) Name() string { return Name }

// Remote reports that pitch lookups never leave the process.
func (p *Provider) Remote() bool { return false }

// Fetch looks the word up in the accent table and renders a diagram. When
// the item carries a reading, the matching table entry is used; otherwise
// the first entry wins. Words absent from the table are a permanent
// not-found outcome.
func (p *Provider) Fetch(_ context.Context, item core.VocabItem) (*core.Payload, error) {
	accents, ok := p.table[item.Word]
	if !ok || len(accents) == 0 {
		return nil, provider.ErrNotFound
	}

	accent := accents[0]
	if item.Reading != "" {
		for _, a := range accents {
			if a.Reading == item.Reading {
				accent = a
				break
			}
		}
	}

	morae := SplitMorae(accent.Reading)
	text := fmt.Sprintf("[%d] %s", accent.Pattern, PatternName(accent.Pattern, len(morae)))

	return &core.Payload{
		Text:      text,
		Blob:      []byte(DiagramSVG(accent.Reading, accent.Pattern)),
		MediaType: "image/svg+xml",
	}, nil
}
