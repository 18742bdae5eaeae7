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

// Package export turns the processed record collection into files the deck
// packaging step consumes: a records.json with all textual results and a
// media directory holding audio and diagram blobs.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/storage"
)

// ErrNothingToExport is returned when no checkpoint exists yet.
var ErrNothingToExport = errors.New("no processed records to export")

// Manifest summarizes what an export produced.
type Manifest struct {
	Records    int
	MediaFiles int
	Dir        string
}

// entryResult is the JSON form of one provider outcome.
type entryResult struct {
	Status    string `json:"status"`
	Text      string `json:"text,omitempty"`
	MediaFile string `json:"media_file,omitempty"`
	Reason    string `json:"reason,omitempty"`
	FromCache bool   `json:"from_cache,omitempty"`
}

// entry is the JSON form of one enriched word.
type entry struct {
	Word        string                 `json:"word"`
	Reading     string                 `json:"reading"`
	Romaji      string                 `json:"romaji,omitempty"`
	MeaningVI   string                 `json:"meaning_vi"`
	Chapter     string                 `json:"chapter,omitempty"`
	SubCategory string                 `json:"sub_category,omitempty"`
	Example     string                 `json:"example,omitempty"`
	Results     map[string]entryResult `json:"results"`
}

// Exporter writes the processed collection to disk.
type Exporter struct {
	checkpoints storage.CheckpointStore
	logger      *slog.Logger
}

// NewExporter creates an exporter over the checkpoint store.
func NewExporter(checkpoints storage.CheckpointStore) *Exporter {
	return &Exporter{
		checkpoints: checkpoints,
		logger:      slog.Default().With("component", "exporter"),
	}
}

// Export writes records.json and the media directory under dir. Partial
// collections export fine; only processed items appear. The transform is
// deterministic, exporting twice produces identical trees.
func (e *Exporter) Export(ctx context.Context, dir string) (*Manifest, error) {
	cp, err := e.checkpoints.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cp == nil || cp.Processed == 0 {
		return nil, ErrNothingToExport
	}

	records, err := e.checkpoints.LoadRecords(ctx, cp.Processed)
	if err != nil {
		return nil, err
	}

	mediaDir := filepath.Join(dir, "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	manifest := &Manifest{Dir: dir}
	entries := make([]entry, 0, len(records))
	for _, record := range records {
		en := entry{
			Word:        record.Item.Word,
			Reading:     record.Item.Reading,
			Romaji:      record.Item.Romaji,
			MeaningVI:   record.Item.MeaningVI,
			Chapter:     record.Item.Chapter,
			SubCategory: record.Item.SubCategory,
			Example:     record.Item.Example,
			Results:     make(map[string]entryResult, len(record.Results)),
		}

		for name, result := range record.Results {
			er := entryResult{
				Status:    statusLabel(result.Status),
				Text:      result.Payload.Text,
				Reason:    result.Reason,
				FromCache: result.FromCache,
			}
			if len(result.Payload.Blob) > 0 {
				file := mediaFileName(name, record.Item, result.Payload.MediaType)
				if err := os.WriteFile(filepath.Join(mediaDir, file), result.Payload.Blob, 0o644); err != nil {
					return nil, fmt.Errorf("writing media file: %w", err)
				}
				er.MediaFile = file
				manifest.MediaFiles++
			}
			en.Results[name] = er
		}
		entries = append(entries, en)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, "records.json"), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing records.json: %w", err)
	}

	manifest.Records = len(entries)
	e.logger.Info("export complete",
		"records", manifest.Records,
		"media_files", manifest.MediaFiles,
		"dir", dir)
	return manifest, nil
}

func statusLabel(s core.ResultStatus) string {
	switch s {
	case core.StatusSuccess:
		return "success"
	case core.StatusUnavailable:
		return "unavailable"
	default:
		return "not_attempted"
	}
}

// mediaFileName builds a deterministic, collision free file name from the
// provider and item identity.
func mediaFileName(provider string, item core.VocabItem, mediaType string) string {
	ext := ".bin"
	switch mediaType {
	case "audio/mpeg":
		ext = ".mp3"
	case "image/svg+xml":
		ext = ".svg"
	}
	return fmt.Sprintf("%s_%016x%s", provider, uint64(core.CacheKeyID(provider, item.Word, item.Reading)), ext)
}
