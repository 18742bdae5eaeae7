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


// Package provider defines the enrichment source abstraction and its error
// vocabulary.
//
// Each subpackage implements one source: jisho (English meanings),
// kanjiapi (kun/on readings), pitch (pitch-accent patterns and diagrams),
// strokeorder (KanjiVG stroke-order SVGs), tts (synthesized audio),
// hanviet (Sino-Vietnamese readings), reading (kagome-based kana readings),
// and sentences (LLM-generated example sentences). The mock subpackage
// provides a configurable test double.
//
// Providers report expected absence of data as ErrNotFound and retryable
// failures via MarkTransient; neither ever aborts a pipeline run.
package provider
