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


package jisho

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "jisho"

const defaultBaseURL = "https://jisho.org/api/v1/search/words"

const (
	maxSenses          = 2
	maxGlossesPerSense = 3
)

// Client looks up English meanings on the jisho.org search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ provider.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests and mirrors.
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

// New creates a jisho meaning provider.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default().With("component", "jisho"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name.
func (c *Client) Name() string { return Name }

// Remote reports that jisho lookups leave the process.
func (c *Client) Remote() bool { return true }

type searchResponse struct {
	Data []searchResult `json:"data"`
}

type searchResult struct {
	Slug     string          `json:"slug"`
	Japanese []japaneseEntry `json:"japanese"`
	Senses   []sense         `json:"senses"`
}

type japaneseEntry struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

type sense struct {
	EnglishDefinitions []string `json:"english_definitions"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
}

// Fetch looks up the item's surface form and returns a joined English
// meaning from the first senses of the exact-match result. A partial match is
// treated as not found: returning a near-miss would attach wrong meanings.
func (c *Client) Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error) {
	endpoint := c.baseURL + "?keyword=" + url.QueryEscape(item.Word)

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
		// fall through to decoding
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, provider.MarkTransient(fmt.Errorf("jisho returned status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("jisho returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding jisho response: %w", err)
	}

	result := exactMatch(parsed.Data, item.Word)
	if result == nil {
		c.logger.Debug("no exact match", "word", item.Word)
		return nil, provider.ErrNotFound
	}

	meaning := joinMeanings(result.Senses)
	if meaning == "" {
		return nil, provider.ErrNotFound
	}

	return &core.Payload{Text: meaning}, nil
}

// exactMatch returns the first result whose word, reading, or slug equals
// the looked-up word. Kana-only words match on the reading field.
func exactMatch(results []searchResult, word string) *searchResult {
	for i := range results {
		result := &results[i]
		if result.Slug == word {
			return result
		}
		for _, jp := range result.Japanese {
			if jp.Word == word || jp.Reading == word {
				return result
			}
		}
	}
	return nil
}

func joinMeanings(senses []sense) string {
	var meanings []string
	for i, s := range senses {
		if i >= maxSenses {
			break
		}
		glosses := s.EnglishDefinitions
		if len(glosses) > maxGlossesPerSense {
			glosses = glosses[:maxGlossesPerSense]
		}
		meanings = append(meanings, glosses...)
	}
	return strings.Join(meanings, "; ")
}
