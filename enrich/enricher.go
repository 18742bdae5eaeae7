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

// Package enrich coordinates the providers for a single vocabulary item.
// Each provider's cache is consulted before any network call, remote calls
// go through the rate limiter, and transient failures are retried with
// backoff. One provider failing never blocks the others from contributing
// their results.
package enrich

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
	"github.com/poiesic/kotoba/ratelimit"
	"github.com/poiesic/kotoba/storage"
)

// Enricher runs the configured providers against items. Providers within
// one item run concurrently on a shared worker pool.
type Enricher struct {
	cache       storage.CacheStore
	providers   []provider.Provider
	limiter     *ratelimit.Limiter
	pool        *ants.Pool
	offline     bool
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// Option configures an Enricher.
type Option func(*Enricher) error

// WithOffline makes every remote provider report "offline mode" instead of
// reaching the network. Cached results are still served.
func WithOffline(offline bool) Option {
	return func(e *Enricher) error {
		e.offline = offline
		return nil
	}
}

// WithRetry sets the attempt budget and base backoff delay for transient
// provider failures.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(e *Enricher) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		e.maxAttempts = maxAttempts
		e.retryDelay = baseDelay
		return nil
	}
}

// WithLimiter sets the rate limiter applied to remote providers.
func WithLimiter(limiter *ratelimit.Limiter) Option {
	return func(e *Enricher) error {
		e.limiter = limiter
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent provider calls.
// Default is the number of providers.
func WithPoolSize(size int) Option {
	return func(e *Enricher) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEnricher creates an enricher over the given cache and provider set.
func NewEnricher(cache storage.CacheStore, providers []provider.Provider, opts ...Option) (*Enricher, error) {
	if cache == nil {
		return nil, ErrCacheStoreRequired
	}
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	poolSize := len(providers)
	if poolSize > runtime.NumCPU()*2 {
		poolSize = runtime.NumCPU() * 2
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Enricher{
		cache:       cache,
		providers:   providers,
		limiter:     ratelimit.New(0),
		pool:        pool,
		maxAttempts: 2,
		retryDelay:  time.Second,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	return e, nil
}

// Enrich runs every provider for the item and assembles the record. It
// returns an error only on infrastructure failures, cache reads or writes
// going bad; provider lookups that fail are captured in the record as
// unavailable results.
func (e *Enricher) Enrich(ctx context.Context, item core.VocabItem) (*core.Record, error) {
	if err := core.ValidateVocabItem(&item); err != nil {
		return nil, err
	}

	results := make([]core.ProviderResult, len(e.providers))
	errs := make([]error, len(e.providers))

	var wg sync.WaitGroup
	for i, p := range e.providers {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i], errs[i] = e.runProvider(ctx, p, item)
		}
		if submitErr := e.pool.Submit(task); submitErr != nil {
			task()
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	record := &core.Record{
		Item:       item,
		Results:    make(map[string]core.ProviderResult, len(e.providers)),
		EnrichedAt: time.Now().UTC(),
	}
	for i, p := range e.providers {
		record.Results[p.Name()] = results[i]
	}
	return record, nil
}

// runProvider resolves a single provider result: cache first, then the
// live source. A cached entry with an empty payload is a remembered
// not-found outcome.
func (e *Enricher) runProvider(ctx context.Context, p provider.Provider, item core.VocabItem) (core.ProviderResult, error) {
	name := p.Name()

	entry, err := e.cache.Get(ctx, name, item)
	if err != nil {
		return core.ProviderResult{}, err
	}
	if entry != nil {
		if entry.Payload.Empty() {
			return core.ProviderResult{
				Status:    core.StatusUnavailable,
				Reason:    "not found",
				FromCache: true,
				FetchedAt: entry.FetchedAt,
			}, nil
		}
		return core.ProviderResult{
			Status:    core.StatusSuccess,
			Payload:   entry.Payload,
			FromCache: true,
			FetchedAt: entry.FetchedAt,
		}, nil
	}

	if e.offline && p.Remote() {
		return core.ProviderResult{
			Status: core.StatusUnavailable,
			Reason: "offline mode",
		}, nil
	}

	if p.Remote() {
		if err := e.limiter.Acquire(ctx, name); err != nil {
			return core.ProviderResult{}, err
		}
	}

	fetchedAt := time.Now().UTC()
	var payload *core.Payload
	fetchErr := RetryTransient(ctx, func() error {
		var opErr error
		payload, opErr = p.Fetch(ctx, item)
		return opErr
	}, e.maxAttempts, e.retryDelay)

	switch {
	case fetchErr == nil:
		if err := e.cache.Put(ctx, name, item, &core.CacheEntry{Payload: *payload, FetchedAt: fetchedAt}); err != nil {
			return core.ProviderResult{}, err
		}
		return core.ProviderResult{
			Status:    core.StatusSuccess,
			Payload:   *payload,
			FetchedAt: fetchedAt,
		}, nil

	case errors.Is(fetchErr, provider.ErrNotFound):
		// Remember the miss so future runs skip the lookup.
		if err := e.cache.Put(ctx, name, item, &core.CacheEntry{FetchedAt: fetchedAt}); err != nil {
			return core.ProviderResult{}, err
		}
		return core.ProviderResult{
			Status:    core.StatusUnavailable,
			Reason:    "not found",
			FetchedAt: fetchedAt,
		}, nil

	default:
		if ctx.Err() != nil {
			return core.ProviderResult{}, ctx.Err()
		}
		e.logger.Warn("provider lookup failed", "provider", name, "word", item.Word, "err", fetchErr)
		return core.ProviderResult{
			Status:    core.StatusUnavailable,
			Reason:    fetchErr.Error(),
			FetchedAt: fetchedAt,
		}, nil
	}
}

// Release frees the worker pool. The enricher is unusable afterwards.
func (e *Enricher) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}
