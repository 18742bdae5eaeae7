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

// Package tts synthesizes pronunciation audio through an OpenAI-compatible
// speech endpoint.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "audio"

const (
	defaultBaseURL = "http://localhost:8880"
	defaultModel   = "tts-1"
	defaultVoice   = "ja-JP-NanamiNeural"
)

// Client requests MP3 audio from a /v1/audio/speech endpoint.
type Client struct {
	baseURL    string
	model      string
	voice      string
	httpClient *http.Client
}

var _ provider.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the speech server address.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithModel sets the synthesis model name.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithVoice sets the voice preset.
func WithVoice(voice string) Option {
	return func(c *Client) {
		c.voice = voice
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates an audio provider.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		voice:      defaultVoice,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name.
func (c *Client) Name() string { return Name }

// Remote reports that synthesis requests leave the process.
func (c *Client) Remote() bool { return true }

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

// Fetch synthesizes MP3 audio for the item's surface form.
func (c *Client) Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error) {
	body, err := json.Marshal(speechRequest{
		Model:          c.model,
		Voice:          c.voice,
		Input:          item.Word,
		ResponseFormat: "mp3",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.MarkTransient(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, provider.MarkTransient(fmt.Errorf("speech server returned status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("speech server returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.MarkTransient(fmt.Errorf("reading audio response: %w", err))
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech server returned empty audio for %q", item.Word)
	}

	return &core.Payload{
		Blob:      audio,
		MediaType: "audio/mpeg",
	}, nil
}
