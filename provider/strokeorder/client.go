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

// Package strokeorder fetches KanjiVG stroke data and restyles it into a
// numbered stroke order diagram.
package strokeorder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "strokes"

// KanjiVG names files by the zero-padded hex code point of the character.
const defaultBaseURL = "https://raw.githubusercontent.com/KanjiVG/kanjivg/master/kanji"

// Client fetches per-character stroke SVGs from the KanjiVG repository.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ provider.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the KanjiVG endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a stroke order provider.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name.
func (c *Client) Name() string { return Name }

// Remote reports that KanjiVG lookups leave the process.
func (c *Client) Remote() bool { return true }

// Fetch downloads the KanjiVG SVG for the first kanji of the item's surface
// form and rebuilds it with stroke numbers and a gradient. Kana-only words
// are a permanent not-found outcome.
func (c *Client) Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error) {
	kanji, ok := firstKanji(item.Word)
	if !ok {
		return nil, provider.ErrNotFound
	}

	endpoint := fmt.Sprintf("%s/%05x.svg", c.baseURL, kanji)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.MarkTransient(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, provider.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, provider.MarkTransient(fmt.Errorf("kanjivg returned status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("kanjivg returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.MarkTransient(fmt.Errorf("reading kanjivg response: %w", err))
	}

	diagram := Restyle(string(raw))
	if diagram == "" {
		return nil, provider.ErrNotFound
	}

	return &core.Payload{
		Text:      string(kanji),
		Blob:      []byte(diagram),
		MediaType: "image/svg+xml",
	}, nil
}

// firstKanji returns the first CJK ideograph of the word.
func firstKanji(word string) (rune, bool) {
	for _, r := range word {
		if r >= 0x4e00 && r <= 0x9fff {
			return r, true
		}
	}
	return 0, false
}
