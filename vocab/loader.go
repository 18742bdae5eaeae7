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

// Package vocab loads the chapter-grouped vocabulary handoff file produced
// by the extraction step and flattens it into an ordered collection with a
// source digest.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/kotoba/core"
)

// fileEntry is one word inside a chapter.
type fileEntry struct {
	Word        string `json:"word"`
	Reading     string `json:"reading"`
	Romaji      string `json:"romaji,omitempty"`
	MeaningVI   string `json:"meaning_vi"`
	SubCategory string `json:"sub_category,omitempty"`
	Example     string `json:"example,omitempty"`
}

// fileChapter is one ordered chapter of the handoff file.
type fileChapter struct {
	Title string      `json:"title"`
	Words []fileEntry `json:"words"`
}

// handoffFile is the top-level shape of the vocabulary JSON.
type handoffFile struct {
	Chapters []fileChapter `json:"chapters"`
}

// Load reads a vocabulary file and returns the flattened collection.
// Chapter order and word order within chapters are preserved; the digest
// identifies exactly this sequence of items.
func Load(path string) (core.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Collection{}, fmt.Errorf("reading vocabulary file: %w", err)
	}
	return Parse(data)
}

// Parse decodes vocabulary JSON into a collection.
func Parse(data []byte) (core.Collection, error) {
	var file handoffFile
	if err := json.Unmarshal(data, &file); err != nil {
		return core.Collection{}, fmt.Errorf("parsing vocabulary file: %w", err)
	}

	var items []core.VocabItem
	for ci, chapter := range file.Chapters {
		for wi, entry := range chapter.Words {
			item := core.VocabItem{
				Word:        entry.Word,
				Reading:     entry.Reading,
				Romaji:      entry.Romaji,
				MeaningVI:   entry.MeaningVI,
				Chapter:     chapter.Title,
				SubCategory: entry.SubCategory,
				Example:     entry.Example,
			}
			if err := core.ValidateVocabItem(&item); err != nil {
				return core.Collection{}, fmt.Errorf("chapter %d word %d: %w", ci, wi, err)
			}
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return core.Collection{}, core.ErrEmptyCollection
	}

	return core.Collection{
		Items:  items,
		Digest: core.CollectionDigest(items),
	}, nil
}
