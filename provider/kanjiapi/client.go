package kanjiapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "kanji"

const defaultBaseURL = "https://kanjiapi.dev/v1/kanji"

// Client looks up kun/on readings for the first kanji of a word on
// kanjiapi.dev.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ provider.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
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

// New creates a kanji reading provider.
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

// Remote reports that kanjiapi lookups leave the process.
func (c *Client) Remote() bool { return true }

type kanjiResponse struct {
	KunReadings []string `json:"kun_readings"`
	OnReadings  []string `json:"on_readings"`
}

// Fetch looks up the first kanji character of the item's surface form and
// returns its kun and on readings. Items without any kanji (kana-only words)
// are a permanent not-found outcome.
func (c *Client) Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error) {
	kanji, ok := firstKanji(item.Word)
	if !ok {
		return nil, provider.ErrNotFound
	}

	endpoint := c.baseURL + "/" + url.PathEscape(string(kanji))
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
		return nil, provider.MarkTransient(fmt.Errorf("kanjiapi returned status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("kanjiapi returned status %d", resp.StatusCode)
	}

	var parsed kanjiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding kanjiapi response: %w", err)
	}

	if len(parsed.KunReadings) == 0 && len(parsed.OnReadings) == 0 {
		return nil, provider.ErrNotFound
	}

	var parts []string
	if len(parsed.KunReadings) > 0 {
		parts = append(parts, "kun: "+strings.Join(parsed.KunReadings, " | "))
	}
	if len(parsed.OnReadings) > 0 {
		parts = append(parts, "on: "+strings.Join(parsed.OnReadings, " | "))
	}

	return &core.Payload{Text: strings.Join(parts, "\n")}, nil
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
