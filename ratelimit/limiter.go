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

// Package ratelimit spaces out remote provider calls so the pipeline stays
// polite toward free public APIs. Each provider gets its own token bucket,
// so a slow provider never delays the others.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out per-provider rate limiters keyed by provider name.
// The zero interval disables limiting entirely.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	buckets  map[string]*rate.Limiter
}

// New creates a limiter enforcing at most one call per interval per
// provider.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		buckets:  make(map[string]*rate.Limiter),
	}
}

// Acquire blocks until the named provider may make its next call, or until
// the context is canceled. The first call for a provider proceeds
// immediately.
func (l *Limiter) Acquire(ctx context.Context, name string) error {
	if l.interval <= 0 {
		return ctx.Err()
	}
	return l.bucket(name).Wait(ctx)
}

func (l *Limiter) bucket(name string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[name]
	if !ok {
		b = rate.NewLimiter(rate.Every(l.interval), 1)
		l.buckets[name] = b
	}
	return b
}
