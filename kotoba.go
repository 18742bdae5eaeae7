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

// Package kotoba enriches Japanese vocabulary lists from multiple sources,
// dictionary lookups, kanji data, pitch accent, stroke order, audio and
// generated example sentences, with durable per-source caching and a
// resumable, checkpointed pipeline on top of a single badger database.
package kotoba

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/enrich"
	"github.com/poiesic/kotoba/export"
	"github.com/poiesic/kotoba/pipeline"
	"github.com/poiesic/kotoba/provider"
	"github.com/poiesic/kotoba/provider/hanviet"
	"github.com/poiesic/kotoba/provider/jisho"
	"github.com/poiesic/kotoba/provider/kanjiapi"
	"github.com/poiesic/kotoba/provider/pitch"
	"github.com/poiesic/kotoba/provider/reading"
	"github.com/poiesic/kotoba/provider/sentences"
	"github.com/poiesic/kotoba/provider/strokeorder"
	"github.com/poiesic/kotoba/provider/tts"
	"github.com/poiesic/kotoba/ratelimit"
	"github.com/poiesic/kotoba/storage"
	badgerstore "github.com/poiesic/kotoba/storage/badger"
)

// Config selects the provider set and tunes the pipeline. The zero flags
// enable everything that has a configured endpoint.
type Config struct {
	// Provider disable switches.
	NoEnglish   bool
	NoAudio     bool
	NoPitch     bool
	NoStroke    bool
	NoSentences bool

	// Offline serves remote providers from cache only.
	Offline bool

	// Delay is the minimum spacing between calls per remote provider.
	Delay time.Duration

	// Transient failure retry budget.
	MaxRetries int
	RetryDelay time.Duration

	// PoolSize bounds concurrent provider calls per item. Zero picks a
	// default.
	PoolSize int

	// LLMHost and LLMModel configure example sentence generation.
	// Sentences are skipped when LLMHost is empty.
	LLMHost  string
	LLMModel string

	// TTSHost and TTSVoice configure audio synthesis.
	TTSHost  string
	TTSVoice string

	// Optional data file overrides for the offline providers.
	PitchDataPath   string
	HanVietDataPath string

	// InMemory runs the database without touching disk. Used by tests.
	InMemory bool
}

// DefaultConfig returns the settings the CLI starts from.
func DefaultConfig() *Config {
	return &Config{
		Delay:      500 * time.Millisecond,
		MaxRetries: 2,
		RetryDelay: time.Second,
	}
}

// Pipeline owns the storage backend, the provider set and the enricher. It
// is the single handle the CLI works through.
type Pipeline struct {
	backend     *badgerstore.Backend
	cache       storage.CacheStore
	checkpoints storage.CheckpointStore
	enricher    *enrich.Enricher
	providers   []provider.Provider
	logger      *slog.Logger
}

// Open opens (or creates) the database at dbPath and wires the provider
// set described by cfg.
func Open(dbPath string, cfg *Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	backend, err := badgerstore.OpenBackend(dbPath, cfg.InMemory)
	if err != nil {
		return nil, err
	}

	cache := badgerstore.NewCacheStore(backend)
	checkpoints := badgerstore.NewCheckpointStore(backend)

	providers, err := buildProviders(cfg)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 2
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	enrichOpts := []enrich.Option{
		enrich.WithOffline(cfg.Offline),
		enrich.WithRetry(maxRetries, retryDelay),
		enrich.WithLimiter(ratelimit.New(cfg.Delay)),
	}
	if cfg.PoolSize > 0 {
		enrichOpts = append(enrichOpts, enrich.WithPoolSize(cfg.PoolSize))
	}

	enricher, err := enrich.NewEnricher(cache, providers, enrichOpts...)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	return &Pipeline{
		backend:     backend,
		cache:       cache,
		checkpoints: checkpoints,
		enricher:    enricher,
		providers:   providers,
		logger:      slog.Default(),
	}, nil
}

// buildProviders assembles the provider set from the config switches.
func buildProviders(cfg *Config) ([]provider.Provider, error) {
	var providers []provider.Provider

	if !cfg.NoEnglish {
		providers = append(providers, jisho.New())
		providers = append(providers, kanjiapi.New())
	}

	if !cfg.NoPitch {
		var opts []pitch.Option
		if cfg.PitchDataPath != "" {
			table, err := pitch.LoadTable(cfg.PitchDataPath)
			if err != nil {
				return nil, err
			}
			opts = append(opts, pitch.WithTable(table))
		}
		providers = append(providers, pitch.New(opts...))
	}

	if !cfg.NoStroke {
		providers = append(providers, strokeorder.New())
	}

	if !cfg.NoAudio {
		var opts []tts.Option
		if cfg.TTSHost != "" {
			opts = append(opts, tts.WithBaseURL(cfg.TTSHost))
		}
		if cfg.TTSVoice != "" {
			opts = append(opts, tts.WithVoice(cfg.TTSVoice))
		}
		providers = append(providers, tts.New(opts...))
	}

	if !cfg.NoSentences && cfg.LLMHost != "" {
		generator, err := sentences.New(cfg.LLMHost, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, generator)
	}

	var opts []hanviet.Option
	if cfg.HanVietDataPath != "" {
		m, err := hanviet.LoadMap(cfg.HanVietDataPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hanviet.WithMap(m))
	}
	providers = append(providers, hanviet.New(opts...))

	reader, err := reading.New()
	if err != nil {
		return nil, err
	}
	providers = append(providers, reader)

	return providers, nil
}

// ProviderNames lists the active providers in their configured order.
func (p *Pipeline) ProviderNames() []string {
	names := make([]string, len(p.providers))
	for i, prov := range p.providers {
		names[i] = prov.Name()
	}
	return names
}

// Run drives the collection through enrichment.
func (p *Pipeline) Run(ctx context.Context, collection core.Collection, opts ...pipeline.Option) (*pipeline.Summary, error) {
	driver, err := pipeline.NewDriver(p.checkpoints, p.enricher, opts...)
	if err != nil {
		return nil, err
	}
	return driver.Run(ctx, collection)
}

// Status returns the current checkpoint, or nil when no run has happened.
func (p *Pipeline) Status(ctx context.Context) (*core.Checkpoint, error) {
	return p.checkpoints.Load(ctx)
}

// Reset discards the checkpoint and all enriched records. Provider caches
// survive.
func (p *Pipeline) Reset(ctx context.Context) error {
	return p.checkpoints.Reset(ctx)
}

// Export writes the processed records and their media files under dir.
func (p *Pipeline) Export(ctx context.Context, dir string) (*export.Manifest, error) {
	return export.NewExporter(p.checkpoints).Export(ctx, dir)
}

// Close releases the worker pool and closes storage.
func (p *Pipeline) Close() error {
	p.enricher.Release()

	if err := p.cache.Close(); err != nil {
		p.logger.Error("error closing cache store", "err", err)
		return err
	}
	if err := p.checkpoints.Close(); err != nil {
		p.logger.Error("error closing checkpoint store", "err", err)
		return err
	}
	if err := p.backend.Close(); err != nil {
		p.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
