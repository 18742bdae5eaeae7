package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/enrich"
	"github.com/poiesic/kotoba/provider"
	"github.com/poiesic/kotoba/provider/mock"
	"github.com/poiesic/kotoba/storage"
	badgerstore "github.com/poiesic/kotoba/storage/badger"
)

func testCollection(words ...[2]string) core.Collection {
	items := make([]core.VocabItem, len(words))
	for i, w := range words {
		items[i] = core.VocabItem{Word: w[0], Reading: w[1]}
	}
	return core.Collection{Items: items, Digest: core.CollectionDigest(items)}
}

type fixture struct {
	cache       storage.CacheStore
	checkpoints storage.CheckpointStore
	enricher    *enrich.Enricher
}

func newFixture(t *testing.T, providers []provider.Provider, opts ...enrich.Option) *fixture {
	t.Helper()

	cache, checkpoints, backend, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	opts = append([]enrich.Option{enrich.WithRetry(2, time.Millisecond)}, opts...)
	e, err := enrich.NewEnricher(cache, providers, opts...)
	require.NoError(t, err)
	t.Cleanup(e.Release)

	return &fixture{cache: cache, checkpoints: checkpoints, enricher: e}
}

func TestRunProcessesAllItems(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)

	collection := testCollection([2]string{"犬", "いぬ"}, [2]string{"猫", "ねこ"}, [2]string{"山", "やま"})
	summary, err := driver.Run(context.Background(), collection)
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, summary.State)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 3, summary.ResumeIndex)
	assert.Equal(t, 3, summary.Providers["meaning"].Success)
	assert.Equal(t, 3, summary.Providers["meaning"].Fetched)

	// Records landed in order.
	records, err := f.checkpoints.LoadRecords(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "犬", records[0].Item.Word)
	assert.Equal(t, "山", records[2].Item.Word)
}

func TestRunResumesAfterInterruption(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	collection := testCollection([2]string{"犬", "いぬ"}, [2]string{"猫", "ねこ"}, [2]string{"山", "やま"})

	// Cancel once two items are through.
	ctx, cancel := context.WithCancel(context.Background())
	var processed atomic.Int32
	p.FetchFunc = func(_ context.Context, item core.VocabItem) (*core.Payload, error) {
		if processed.Add(1) == 2 {
			cancel()
		}
		return &core.Payload{Text: "meaning:" + item.Word}, nil
	}

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)

	summary, err := driver.Run(ctx, collection)
	require.NoError(t, err)
	assert.Equal(t, StateInterrupted, summary.State)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.ResumeIndex)

	// Second run picks up at item 3 and only fetches the remainder.
	summary, err = driver.Run(context.Background(), collection)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, summary.State)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, int32(3), processed.Load())

	records, err := f.checkpoints.LoadRecords(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "山", records[2].Item.Word)
}

func TestRunCompletedCollectionIsNoOp(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)

	collection := testCollection([2]string{"犬", "いぬ"})
	_, err = driver.Run(context.Background(), collection)
	require.NoError(t, err)

	summary, err := driver.Run(context.Background(), collection)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, summary.State)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 1, p.CallCount())
}

func TestRunRejectsDifferentCollection(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)

	_, err = driver.Run(context.Background(), testCollection([2]string{"犬", "いぬ"}))
	require.NoError(t, err)

	_, err = driver.Run(context.Background(), testCollection([2]string{"猫", "ねこ"}))
	assert.ErrorIs(t, err, storage.ErrCheckpointMismatch)
}

func TestRunForceRestartKeepsCaches(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	collection := testCollection([2]string{"犬", "いぬ"}, [2]string{"猫", "ねこ"})

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)
	_, err = driver.Run(context.Background(), collection)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CallCount())

	restarted, err := NewDriver(f.checkpoints, f.enricher, WithForceRestart(true))
	require.NoError(t, err)
	summary, err := restarted.Run(context.Background(), collection)
	require.NoError(t, err)

	// Everything reprocessed, nothing refetched.
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, p.CallCount())
	assert.Equal(t, 2, summary.Providers["meaning"].FromCache)

	// Force restart also accepts a brand new collection.
	other, err := NewDriver(f.checkpoints, f.enricher, WithForceRestart(true))
	require.NoError(t, err)
	_, err = other.Run(context.Background(), testCollection([2]string{"山", "やま"}))
	require.NoError(t, err)
}

func TestRunOfflineScenario(t *testing.T) {
	remote := mock.NewMockProvider("meaning", true)
	local := mock.NewMockProvider("reading", false)

	f := newFixture(t, []provider.Provider{remote, local}, enrich.WithOffline(true))

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)

	collection := testCollection([2]string{"犬", "いぬ"}, [2]string{"猫", "ねこ"}, [2]string{"山", "やま"})
	summary, err := driver.Run(context.Background(), collection)
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, summary.State)
	assert.Equal(t, 3, summary.Providers["meaning"].Unavailable)
	assert.Equal(t, 0, remote.CallCount())
	assert.Equal(t, 3, summary.Providers["reading"].Success)

	records, err := f.checkpoints.LoadRecords(context.Background(), 3)
	require.NoError(t, err)
	for _, record := range records {
		assert.Equal(t, "offline mode", record.Result("meaning").Reason)
		assert.Equal(t, core.StatusSuccess, record.Result("reading").Status)
	}
}

func TestRunEmptyCollectionRejected(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	driver, err := NewDriver(f.checkpoints, f.enricher)
	require.NoError(t, err)

	_, err = driver.Run(context.Background(), core.Collection{})
	assert.ErrorIs(t, err, core.ErrEmptyCollection)
}

func TestRunInfrastructureErrorAborts(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)

	cache, checkpoints, backend, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)

	e, err := enrich.NewEnricher(cache, []provider.Provider{p}, enrich.WithRetry(2, time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(e.Release)

	driver, err := NewDriver(checkpoints, e)
	require.NoError(t, err)

	// Closing the backend makes every store operation fail.
	require.NoError(t, backend.Close())

	_, err = driver.Run(context.Background(), testCollection([2]string{"犬", "いぬ"}))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrCheckpointMismatch))
}

func TestNewDriverValidation(t *testing.T) {
	p := mock.NewMockProvider("meaning", true)
	f := newFixture(t, []provider.Provider{p})

	_, err := NewDriver(nil, f.enricher)
	assert.ErrorIs(t, err, ErrCheckpointStoreRequired)

	_, err = NewDriver(f.checkpoints, nil)
	assert.ErrorIs(t, err, ErrEnricherRequired)
}
