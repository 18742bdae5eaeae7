package kotoba

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/export"
	"github.com/poiesic/kotoba/pipeline"
)

func openOffline(t *testing.T) *Pipeline {
	t.Helper()

	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.Offline = true
	cfg.Delay = 0

	p, err := Open("", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func animalCollection() core.Collection {
	items := []core.VocabItem{
		{Word: "犬", Reading: "いぬ", MeaningVI: "con chó", Chapter: "Chương 1"},
		{Word: "猫", Reading: "ねこ", MeaningVI: "con mèo", Chapter: "Chương 1"},
		{Word: "山", Reading: "やま", MeaningVI: "núi", Chapter: "Chương 2"},
	}
	return core.Collection{Items: items, Digest: core.CollectionDigest(items)}
}

func TestOfflineRunEndToEnd(t *testing.T) {
	p := openOffline(t)

	summary, err := p.Run(context.Background(), animalCollection())
	require.NoError(t, err)

	assert.Equal(t, pipeline.StateCompleted, summary.State)
	assert.Equal(t, 3, summary.Processed)

	// Offline providers resolve, remote ones report offline mode.
	assert.Equal(t, 3, summary.Providers["reading"].Success)
	assert.Equal(t, 3, summary.Providers["pitch"].Success)
	assert.Equal(t, 3, summary.Providers["hanviet"].Success)
	assert.Equal(t, 3, summary.Providers["jisho"].Unavailable)
	assert.Equal(t, 3, summary.Providers["audio"].Unavailable)
}

func TestStatusReflectsProgress(t *testing.T) {
	p := openOffline(t)

	cp, err := p.Status(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cp)

	collection := animalCollection()
	_, err = p.Run(context.Background(), collection)
	require.NoError(t, err)

	cp, err = p.Status(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Equal(t, 3, cp.Processed)
	assert.Equal(t, collection.Digest, cp.SourceDigest)
}

func TestResetClearsCheckpoint(t *testing.T) {
	p := openOffline(t)

	_, err := p.Run(context.Background(), animalCollection())
	require.NoError(t, err)

	require.NoError(t, p.Reset(context.Background()))

	cp, err := p.Status(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestExportAfterRun(t *testing.T) {
	p := openOffline(t)

	_, err := p.Run(context.Background(), animalCollection())
	require.NoError(t, err)

	dir := t.TempDir()
	manifest, err := p.Export(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 3, manifest.Records)

	_, err = os.Stat(filepath.Join(dir, "records.json"))
	assert.NoError(t, err)

	// Pitch diagrams come out as SVG media.
	assert.Greater(t, manifest.MediaFiles, 0)
}

func TestExportBeforeRun(t *testing.T) {
	p := openOffline(t)
	_, err := p.Export(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, export.ErrNothingToExport)
}

func TestProviderSwitches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.Offline = true
	cfg.Delay = 0
	cfg.NoEnglish = true
	cfg.NoAudio = true
	cfg.NoPitch = true
	cfg.NoStroke = true

	p, err := Open("", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	names := p.ProviderNames()
	assert.ElementsMatch(t, []string{"hanviet", "reading"}, names)
}

func TestProviderNamesFullSet(t *testing.T) {
	p := openOffline(t)
	names := p.ProviderNames()
	assert.Contains(t, names, "jisho")
	assert.Contains(t, names, "kanji")
	assert.Contains(t, names, "pitch")
	assert.Contains(t, names, "strokes")
	assert.Contains(t, names, "audio")
	assert.NotContains(t, names, "sentences")
}
