package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that identical content
// always produces identical IDs, independent of run or input document.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CacheKeyID returns the canonical cache key for one provider's result on one
// item. The key depends only on the provider name and the item's identity
// (surface form + reading), never on the run or the input document, so cache
// entries are shared across runs and across vocabulary files.
func CacheKeyID(provider, word, reading string) ID {
	return IDFromContent(provider + "\x00" + word + "\x00" + reading)
}

// VocabItem is a single vocabulary entry as extracted from the source
// document. Items are immutable once loaded; enrichment results live in the
// associated Record, never on the item itself.
type VocabItem struct {
	Word        string // surface form, kanji or kana
	Reading     string // hiragana reading
	Romaji      string
	MeaningVI   string // Vietnamese meaning from the source document
	Chapter     string
	SubCategory string
	Example     string // optional example sentence from the source document
}

// Key returns the identity string for the item.
func (v *VocabItem) Key() string {
	return v.Word + "::" + v.Reading
}

// ResultStatus describes the outcome of one provider for one item.
type ResultStatus int

const (
	// StatusNotAttempted means the provider has not been asked yet.
	StatusNotAttempted ResultStatus = iota + 1
	// StatusSuccess means the provider produced a payload.
	StatusSuccess
	// StatusUnavailable means the provider terminally failed for this item.
	StatusUnavailable
)

// Payload is the normalized output of a provider. Textual results (meanings,
// readings, pitch labels) go in Text; binary or markup results (SVG, audio)
// go in Blob with MediaType set.
type Payload struct {
	Text      string
	Blob      []byte
	MediaType string
}

// Empty reports whether the payload carries no content. Caches store an
// empty payload to remember a permanent not-found lookup.
func (p Payload) Empty() bool {
	return p.Text == "" && len(p.Blob) == 0
}

// ProviderResult is one provider's outcome for one item. Failures are data,
// not errors: an unavailable source is recorded here and the pipeline moves on.
type ProviderResult struct {
	Status    ResultStatus
	Payload   Payload
	Reason    string // human-readable cause when Status is StatusUnavailable
	FromCache bool
	FetchedAt time.Time
}

// Record is the enriched counterpart of one VocabItem: a mapping from
// provider name to that provider's result.
type Record struct {
	Item       VocabItem
	Results    map[string]ProviderResult
	EnrichedAt time.Time
}

// Result returns the entry for the named provider, or a StatusNotAttempted
// result if the provider was never asked.
func (r *Record) Result(provider string) ProviderResult {
	if res, ok := r.Results[provider]; ok {
		return res
	}
	return ProviderResult{Status: StatusNotAttempted}
}

// Complete reports whether every requested provider has resolved to a
// terminal outcome (success or unavailable).
func (r *Record) Complete(providers []string) bool {
	for _, name := range providers {
		res := r.Result(name)
		if res.Status != StatusSuccess && res.Status != StatusUnavailable {
			return false
		}
	}
	return true
}

// CacheEntry is the durable cached form of a successful provider payload.
type CacheEntry struct {
	Payload   Payload
	FetchedAt time.Time
}

// Checkpoint records the gap-free prefix of the collection that has been
// fully processed and durably persisted. Processed is both the count of
// persisted records and the index of the next item to enrich.
type Checkpoint struct {
	SourceDigest string // digest of the input collection the run belongs to
	Processed    int
	UpdatedAt    time.Time
}

// Collection is the ordered vocabulary collection handed over by the
// document extractor. Order is significant: checkpointing and resume are
// defined in terms of item indices within it.
type Collection struct {
	Items  []VocabItem
	Digest string
}

// CollectionDigest computes a deterministic digest over item identities.
// Two extractions of the same document produce the same digest, which lets a
// checkpoint detect that it is being resumed against a different input.
func CollectionDigest(items []VocabItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Word)
		b.WriteByte(0)
		b.WriteString(item.Reading)
		b.WriteByte(0)
		b.WriteString(item.Chapter)
		b.WriteByte(0)
	}
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(b.String()))
	return hex.EncodeToString(h.Sum(nil))
}
