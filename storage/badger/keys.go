package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/kotoba/core"
)

// Key prefixes for different data types
const (
	cacheEntryPrefix  = "encache"
	enrichedRecPrefix = "enrrec"
	checkpointKeyName = "pipeline:chkpt"
)

// makeCacheKey generates a key for a provider cache entry. The provider name
// is part of the key so every provider gets an independent namespace within
// the shared store.
func makeCacheKey(provider string, item core.VocabItem) []byte {
	id := core.CacheKeyID(provider, item.Word, item.Reading)
	return []byte(fmt.Sprintf("%s:%s:%d", cacheEntryPrefix, provider, id))
}

// makeRecordKey generates a composite key for an enriched record by its
// collection index. Format: prefix:index
func makeRecordKey(index int) []byte {
	prefix := enrichedRecPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort follows collection order
	binary.BigEndian.PutUint64(buf[offset:], uint64(index))
	return buf
}

// makeCheckpointKey generates the key for the pipeline checkpoint.
func makeCheckpointKey() []byte {
	return []byte(checkpointKeyName)
}
