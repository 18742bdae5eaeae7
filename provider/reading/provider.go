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

// Package reading derives hiragana readings with the kagome morphological
// analyzer and its bundled IPA dictionary. It works entirely offline, which
// makes it the verification source for readings supplied in the vocabulary
// file.
package reading

import (
	"context"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "reading"

// Provider tokenizes the word and concatenates per-token readings.
type Provider struct {
	t *tokenizer.Tokenizer
}

var _ provider.Provider = (*Provider)(nil)

// New creates a reading provider. Building the IPA dictionary is the
// expensive part, so the provider is meant to be constructed once and
// shared.
func New() (*Provider, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Provider{t: t}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return Name }

// Remote reports that reading analysis never leaves the process.
func (p *Provider) Remote() bool { return false }

// Fetch tokenizes the item's surface form and joins the hiragana readings
// of every token. Tokens the dictionary cannot read keep their surface
// form. A word producing no reading at all is a permanent not-found
// outcome.
func (p *Provider) Fetch(_ context.Context, item core.VocabItem) (*core.Payload, error) {
	var b strings.Builder
	for _, token := range p.t.Tokenize(item.Word) {
		if token.Class == tokenizer.DUMMY {
			continue
		}

		// IPA feature 7 is the katakana reading.
		features := token.Features()
		if len(features) > 7 && features[7] != "*" {
			b.WriteString(katakanaToHiragana(features[7]))
		} else {
			b.WriteString(token.Surface)
		}
	}

	reading := b.String()
	if reading == "" {
		return nil, provider.ErrNotFound
	}
	return &core.Payload{Text: reading}, nil
}

// katakanaToHiragana shifts katakana code points into the hiragana block.
// The prolonged sound mark and anything outside the block pass through.
func katakanaToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - 'ァ' + 'ぁ'
		}
		return r
	}, s)
}
