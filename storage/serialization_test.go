package storage

import (
	"testing"
	"time"

	"github.com/poiesic/kotoba/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"cache key ID", core.CacheKeyID("jisho", "犬", "いぬ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := &core.Record{
		Item: core.VocabItem{
			Word:      "犬",
			Reading:   "いぬ",
			Romaji:    "inu",
			MeaningVI: "chó",
			Chapter:   "動物",
		},
		Results: map[string]core.ProviderResult{
			"reading": {
				Status:    core.StatusSuccess,
				Payload:   core.Payload{Text: "いぬ"},
				FetchedAt: now,
			},
			"stroke": {
				Status:    core.StatusSuccess,
				Payload:   core.Payload{Blob: []byte("<svg/>"), MediaType: "image/svg+xml"},
				FromCache: true,
				FetchedAt: now,
			},
			"jisho": {
				Status:    core.StatusUnavailable,
				Reason:    "not found",
				FetchedAt: now,
			},
		},
		EnrichedAt: now,
	}

	data := MarshalRecord(record)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record.Item, decoded.Item)
	assert.Equal(t, record.Results, decoded.Results)
	assert.True(t, record.EnrichedAt.Equal(decoded.EnrichedAt))
}

func TestMarshalUnmarshalCacheEntry(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	entry := &core.CacheEntry{
		Payload:   core.Payload{Blob: []byte{0x49, 0x44, 0x33}, MediaType: "audio/mpeg"},
		FetchedAt: now,
	}

	data := MarshalCacheEntry(entry)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCacheEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry.Payload, decoded.Payload)
	assert.True(t, entry.FetchedAt.Equal(decoded.FetchedAt))
}

func TestUnmarshalRecord_CanonicalForm(t *testing.T) {
	local := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("JST", 9*3600))

	record := &core.Record{
		Item: core.VocabItem{Word: "猫", Reading: "ねこ"},
		Results: map[string]core.ProviderResult{
			"jisho": {Status: core.StatusUnavailable, Reason: "not found", FetchedAt: local},
		},
		EnrichedAt: local,
	}

	decoded, err := UnmarshalRecord(MarshalRecord(record))
	require.NoError(t, err)

	// Text-only payloads decode with a nil blob, not an empty slice, and
	// timestamps decode in UTC regardless of the zone they carried in.
	result := decoded.Results["jisho"]
	assert.Nil(t, result.Payload.Blob)
	assert.Equal(t, time.UTC, result.FetchedAt.Location())
	assert.Equal(t, time.UTC, decoded.EnrichedAt.Location())
	assert.True(t, local.Equal(result.FetchedAt))
}

func TestUnmarshalCacheEntry_CanonicalForm(t *testing.T) {
	entry := &core.CacheEntry{FetchedAt: time.Now()}

	decoded, err := UnmarshalCacheEntry(MarshalCacheEntry(entry))
	require.NoError(t, err)
	assert.Nil(t, decoded.Payload.Blob)
	assert.True(t, decoded.Payload.Empty())
	assert.Equal(t, time.UTC, decoded.FetchedAt.Location())
}

func TestUnmarshalCacheEntry_Truncated(t *testing.T) {
	entry := &core.CacheEntry{Payload: core.Payload{Text: "heiban 0"}}
	data := MarshalCacheEntry(entry)

	_, err := UnmarshalCacheEntry(data[:len(data)/2])
	assert.Error(t, err)
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	checkpoint := &core.Checkpoint{
		SourceDigest: "0123456789abcdef",
		Processed:    17,
		UpdatedAt:    now,
	}

	data := MarshalCheckpoint(checkpoint)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)
	assert.Equal(t, checkpoint.SourceDigest, decoded.SourceDigest)
	assert.Equal(t, checkpoint.Processed, decoded.Processed)
	assert.True(t, checkpoint.UpdatedAt.Equal(decoded.UpdatedAt))
}
