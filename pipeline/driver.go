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

// Package pipeline drives a vocabulary collection through enrichment with
// durable checkpointing. Items are processed strictly in order; a run that
// is interrupted resumes from the first unprocessed item, and every
// appended record is matched by a checkpoint advance in the same
// transaction.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/enrich"
	"github.com/poiesic/kotoba/storage"
)

// State describes the outcome of a pipeline run.
type State int

const (
	// StateIdle means the driver has not run yet.
	StateIdle State = iota
	// StateRunning means a run is in flight.
	StateRunning
	// StateCompleted means every item in the collection is processed.
	StateCompleted
	// StateInterrupted means the run stopped early on cancellation. The
	// checkpoint covers everything processed so far.
	StateInterrupted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// ProviderStats aggregates per-provider outcomes across a run.
type ProviderStats struct {
	Success     int
	Unavailable int
	FromCache   int
	Fetched     int
}

// Summary is the result of a pipeline run.
type Summary struct {
	State     State
	Total     int
	Processed int
	// ResumeIndex is where the next run will start.
	ResumeIndex int
	Providers   map[string]ProviderStats
	Elapsed     time.Duration
}

// Driver runs collections through an enricher and records results in the
// checkpoint store.
type Driver struct {
	checkpoints  storage.CheckpointStore
	enricher     *enrich.Enricher
	forceRestart bool
	progressOut  io.Writer
	reportEvery  int
	logger       *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithForceRestart discards the checkpoint and all records before running.
// Provider caches are kept, so a restarted run is mostly cache hits.
func WithForceRestart(force bool) Option {
	return func(d *Driver) {
		d.forceRestart = force
	}
}

// WithProgress enables progress reporting every reportEvery items.
func WithProgress(w io.Writer, reportEvery int) Option {
	return func(d *Driver) {
		d.progressOut = w
		d.reportEvery = reportEvery
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
	}
}

// NewDriver creates a pipeline driver.
func NewDriver(checkpoints storage.CheckpointStore, enricher *enrich.Enricher, opts ...Option) (*Driver, error) {
	if checkpoints == nil {
		return nil, ErrCheckpointStoreRequired
	}
	if enricher == nil {
		return nil, ErrEnricherRequired
	}

	d := &Driver{
		checkpoints: checkpoints,
		enricher:    enricher,
		reportEvery: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Run enriches every unprocessed item of the collection in order. A
// checkpoint from a different collection aborts with
// storage.ErrCheckpointMismatch so the operator can decide between
// force-restart and fixing the input. Cancellation between items is a
// clean stop reported as StateInterrupted in the summary.
func (d *Driver) Run(ctx context.Context, collection core.Collection) (*Summary, error) {
	if len(collection.Items) == 0 {
		return nil, core.ErrEmptyCollection
	}

	if d.forceRestart {
		d.logger.Info("force restart, discarding checkpoint and records")
		if err := d.checkpoints.Reset(ctx); err != nil {
			return nil, err
		}
	}

	start, err := d.resumeIndex(ctx, collection)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		State:       StateRunning,
		Total:       len(collection.Items),
		ResumeIndex: start,
		Providers:   make(map[string]ProviderStats),
	}

	tracker := d.newTracker(len(collection.Items))
	tracker.Start()
	tracker.Update(start)

	d.logger.Info("pipeline run starting",
		"total", len(collection.Items),
		"resuming_from", start)

	for i := start; i < len(collection.Items); i++ {
		if ctx.Err() != nil {
			return d.finish(summary, tracker, StateInterrupted, i), nil
		}

		item := collection.Items[i]
		record, err := d.enricher.Enrich(ctx, item)
		if err != nil {
			if ctx.Err() != nil {
				return d.finish(summary, tracker, StateInterrupted, i), nil
			}
			return nil, err
		}

		if err := d.checkpoints.AppendRecord(ctx, i, record, collection.Digest); err != nil {
			return nil, err
		}

		summary.Processed++
		d.tally(summary, record)
		tracker.Update(i + 1)
	}

	return d.finish(summary, tracker, StateCompleted, len(collection.Items)), nil
}

// resumeIndex loads the checkpoint and verifies it belongs to this
// collection.
func (d *Driver) resumeIndex(ctx context.Context, collection core.Collection) (int, error) {
	cp, err := d.checkpoints.Load(ctx)
	if err != nil {
		return 0, err
	}
	if cp == nil {
		return 0, nil
	}
	if cp.SourceDigest != collection.Digest {
		return 0, storage.ErrCheckpointMismatch
	}
	if cp.Processed > len(collection.Items) {
		return 0, storage.ErrCorruptCheckpoint
	}
	return cp.Processed, nil
}

func (d *Driver) tally(summary *Summary, record *core.Record) {
	for name, result := range record.Results {
		stats := summary.Providers[name]
		switch result.Status {
		case core.StatusSuccess:
			stats.Success++
		case core.StatusUnavailable:
			stats.Unavailable++
		}
		if result.FromCache {
			stats.FromCache++
		} else if result.Status == core.StatusSuccess {
			stats.Fetched++
		}
		summary.Providers[name] = stats
	}
}

func (d *Driver) finish(summary *Summary, tracker *ProgressTracker, state State, next int) *Summary {
	summary.State = state
	summary.ResumeIndex = next
	summary.Elapsed = tracker.Elapsed()
	if state == StateCompleted {
		tracker.Finish()
	}

	d.logger.Info("pipeline run finished",
		"state", state.String(),
		"processed", summary.Processed,
		"resume_index", summary.ResumeIndex)
	return summary
}

func (d *Driver) newTracker(total int) *ProgressTracker {
	out := d.progressOut
	if out == nil {
		out = io.Discard
	}
	return NewProgressTracker(out, total, d.reportEvery)
}
