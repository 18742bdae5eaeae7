// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapngmq3KekiSkkCHSxdVZrFwΞΞ = ord.NewMapSer[string, ProviderResult](ord.String, ProviderResultMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ResultStatusMUS = resultStatusMUS{}

type resultStatusMUS struct{}

func (s resultStatusMUS) Marshal(v ResultStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s resultStatusMUS) Unmarshal(bs []byte) (v ResultStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ResultStatus(tmp)
	return
}

func (s resultStatusMUS) Size(v ResultStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s resultStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var PayloadMUS = payloadMUS{}

type payloadMUS struct{}

func (s payloadMUS) Marshal(v Payload, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += ord.ByteSlice.Marshal(v.Blob, bs[n:])
	return n + ord.String.Marshal(v.MediaType, bs[n:])
}

func (s payloadMUS) Unmarshal(bs []byte) (v Payload, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Blob, n1, err = ord.ByteSlice.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MediaType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s payloadMUS) Size(v Payload) (size int) {
	size = ord.String.Size(v.Text)
	size += ord.ByteSlice.Size(v.Blob)
	return size + ord.String.Size(v.MediaType)
}

func (s payloadMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.ByteSlice.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ProviderResultMUS = providerResultMUS{}

type providerResultMUS struct{}

func (s providerResultMUS) Marshal(v ProviderResult, bs []byte) (n int) {
	n = ResultStatusMUS.Marshal(v.Status, bs)
	n += PayloadMUS.Marshal(v.Payload, bs[n:])
	n += ord.String.Marshal(v.Reason, bs[n:])
	n += ord.Bool.Marshal(v.FromCache, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.FetchedAt, bs[n:])
}

func (s providerResultMUS) Unmarshal(bs []byte) (v ProviderResult, n int, err error) {
	v.Status, n, err = ResultStatusMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Payload, n1, err = PayloadMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Reason, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FromCache, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FetchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s providerResultMUS) Size(v ProviderResult) (size int) {
	size = ResultStatusMUS.Size(v.Status)
	size += PayloadMUS.Size(v.Payload)
	size += ord.String.Size(v.Reason)
	size += ord.Bool.Size(v.FromCache)
	return size + raw.TimeUnixMicro.Size(v.FetchedAt)
}

func (s providerResultMUS) Skip(bs []byte) (n int, err error) {
	n, err = ResultStatusMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = PayloadMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var VocabItemMUS = vocabItemMUS{}

type vocabItemMUS struct{}

func (s vocabItemMUS) Marshal(v VocabItem, bs []byte) (n int) {
	n = ord.String.Marshal(v.Word, bs)
	n += ord.String.Marshal(v.Reading, bs[n:])
	n += ord.String.Marshal(v.Romaji, bs[n:])
	n += ord.String.Marshal(v.MeaningVI, bs[n:])
	n += ord.String.Marshal(v.Chapter, bs[n:])
	n += ord.String.Marshal(v.SubCategory, bs[n:])
	return n + ord.String.Marshal(v.Example, bs[n:])
}

func (s vocabItemMUS) Unmarshal(bs []byte) (v VocabItem, n int, err error) {
	v.Word, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Reading, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Romaji, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MeaningVI, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Chapter, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SubCategory, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Example, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s vocabItemMUS) Size(v VocabItem) (size int) {
	size = ord.String.Size(v.Word)
	size += ord.String.Size(v.Reading)
	size += ord.String.Size(v.Romaji)
	size += ord.String.Size(v.MeaningVI)
	size += ord.String.Size(v.Chapter)
	size += ord.String.Size(v.SubCategory)
	return size + ord.String.Size(v.Example)
}

func (s vocabItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var RecordMUS = recordMUS{}

type recordMUS struct{}

func (s recordMUS) Marshal(v Record, bs []byte) (n int) {
	n = VocabItemMUS.Marshal(v.Item, bs)
	n += mapngmq3KekiSkkCHSxdVZrFwΞΞ.Marshal(v.Results, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.EnrichedAt, bs[n:])
}

func (s recordMUS) Unmarshal(bs []byte) (v Record, n int, err error) {
	v.Item, n, err = VocabItemMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Results, n1, err = mapngmq3KekiSkkCHSxdVZrFwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EnrichedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recordMUS) Size(v Record) (size int) {
	size = VocabItemMUS.Size(v.Item)
	size += mapngmq3KekiSkkCHSxdVZrFwΞΞ.Size(v.Results)
	return size + raw.TimeUnixMicro.Size(v.EnrichedAt)
}

func (s recordMUS) Skip(bs []byte) (n int, err error) {
	n, err = VocabItemMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = mapngmq3KekiSkkCHSxdVZrFwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CacheEntryMUS = cacheEntryMUS{}

type cacheEntryMUS struct{}

func (s cacheEntryMUS) Marshal(v CacheEntry, bs []byte) (n int) {
	n = PayloadMUS.Marshal(v.Payload, bs)
	return n + raw.TimeUnixMicro.Marshal(v.FetchedAt, bs[n:])
}

func (s cacheEntryMUS) Unmarshal(bs []byte) (v CacheEntry, n int, err error) {
	v.Payload, n, err = PayloadMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FetchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s cacheEntryMUS) Size(v CacheEntry) (size int) {
	size = PayloadMUS.Size(v.Payload)
	return size + raw.TimeUnixMicro.Size(v.FetchedAt)
}

func (s cacheEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = PayloadMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CheckpointMUS = checkpointMUS{}

type checkpointMUS struct{}

func (s checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.SourceDigest, bs)
	n += varint.Int.Marshal(v.Processed, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	v.SourceDigest, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Processed, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checkpointMUS) Size(v Checkpoint) (size int) {
	size = ord.String.Size(v.SourceDigest)
	size += varint.Int.Size(v.Processed)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s checkpointMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
