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

// Package sentences generates example sentences for a vocabulary item with
// an OpenAI-compatible chat model.
package sentences

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

// Name is the stable provider name used for cache keys and record entries.
const Name = "sentences"

const systemPrompt = `You write example sentences for Japanese vocabulary flashcards.
Given a word and its reading, produce 2 short, natural Japanese sentences that
use the word, each followed by an English translation.
Respond with JSON only, in this shape:
{"sentences": [{"japanese": "...", "english": "..."}]}`

// Generator implements the provider interface over a chat model.
type Generator struct {
	client llms.Model
	logger *slog.Logger
}

var _ provider.Provider = (*Generator)(nil)

type sentence struct {
	Japanese string `json:"japanese"`
	English  string `json:"english"`
}

type response struct {
	Sentences []sentence `json:"sentences"`
}

// New creates a sentence generator talking to an OpenAI-compatible endpoint.
// The "none" token suits local services that skip authentication.
func New(host, model string) (*Generator, error) {
	client, err := openai.New(
		openai.WithBaseURL(host),
		openai.WithToken("none"),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &Generator{
		client: client,
		logger: slog.Default().With("component", "sentence-generator"),
	}, nil
}

// NewWithModel wires an existing model client. Used by tests.
func NewWithModel(client llms.Model) *Generator {
	return &Generator{
		client: client,
		logger: slog.Default().With("component", "sentence-generator"),
	}
}

// Name returns the provider name.
func (g *Generator) Name() string { return Name }

// Remote reports that generation requests leave the process.
func (g *Generator) Remote() bool { return true }

// Fetch asks the model for example sentences and renders them one per line
// as "japanese<TAB>english". Model failures are transient; a well-formed
// but empty response is a permanent not-found outcome.
func (g *Generator) Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error) {
	prompt := fmt.Sprintf("Word: %s\nReading: %s", item.Word, item.Reading)
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	resp, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.7), llms.WithJSONMode())
	if err != nil {
		return nil, provider.MarkTransient(err)
	}
	if len(resp.Choices) < 1 {
		return nil, provider.MarkTransient(fmt.Errorf("model returned no choices for %q", item.Word))
	}

	// Strip markdown code fences if present.
	text := strings.TrimSpace(resp.Choices[0].Content)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var parsed response
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		g.logger.Warn("malformed sentence response", "word", item.Word, "err", err)
		return nil, provider.MarkTransient(fmt.Errorf("parsing sentence response: %w", err))
	}

	var lines []string
	for _, s := range parsed.Sentences {
		japanese := strings.TrimSpace(s.Japanese)
		if japanese == "" {
			continue
		}
		lines = append(lines, japanese+"\t"+strings.TrimSpace(s.English))
	}
	if len(lines) == 0 {
		return nil, provider.ErrNotFound
	}

	return &core.Payload{Text: strings.Join(lines, "\n")}, nil
}
