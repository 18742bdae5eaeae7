package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kotoba/core"
)

const sampleFile = `{
  "chapters": [
    {
      "title": "Chương 1: Động vật",
      "words": [
        {"word": "犬", "reading": "いぬ", "romaji": "inu", "meaning_vi": "con chó"},
        {"word": "猫", "reading": "ねこ", "romaji": "neko", "meaning_vi": "con mèo", "sub_category": "Thú cưng"}
      ]
    },
    {
      "title": "Chương 2: Thiên nhiên",
      "words": [
        {"word": "山", "reading": "やま", "meaning_vi": "núi", "example": "山に登る。"}
      ]
    }
  ]
}`

func TestParsePreservesOrder(t *testing.T) {
	collection, err := Parse([]byte(sampleFile))
	require.NoError(t, err)
	require.Len(t, collection.Items, 3)

	assert.Equal(t, "犬", collection.Items[0].Word)
	assert.Equal(t, "猫", collection.Items[1].Word)
	assert.Equal(t, "山", collection.Items[2].Word)

	first := collection.Items[0]
	assert.Equal(t, "いぬ", first.Reading)
	assert.Equal(t, "inu", first.Romaji)
	assert.Equal(t, "con chó", first.MeaningVI)
	assert.Equal(t, "Chương 1: Động vật", first.Chapter)

	assert.Equal(t, "Thú cưng", collection.Items[1].SubCategory)
	assert.Equal(t, "Chương 2: Thiên nhiên", collection.Items[2].Chapter)
	assert.Equal(t, "山に登る。", collection.Items[2].Example)
}

func TestParseDigestIsDeterministic(t *testing.T) {
	a, err := Parse([]byte(sampleFile))
	require.NoError(t, err)
	b, err := Parse([]byte(sampleFile))
	require.NoError(t, err)
	assert.Equal(t, a.Digest, b.Digest)
	assert.NotEmpty(t, a.Digest)
}

func TestParseDigestChangesWithContent(t *testing.T) {
	a, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	b, err := Parse([]byte(`{"chapters": [{"title": "x", "words": [{"word": "犬", "reading": "いぬ", "meaning_vi": "con chó"}]}]}`))
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, b.Digest)
}

func TestParseRejectsInvalidItem(t *testing.T) {
	_, err := Parse([]byte(`{"chapters": [{"title": "x", "words": [{"word": "", "reading": "いぬ", "meaning_vi": "?"}]}]}`))
	assert.ErrorIs(t, err, core.ErrEmptyWord)
}

func TestParseRejectsEmptyFile(t *testing.T) {
	_, err := Parse([]byte(`{"chapters": []}`))
	assert.ErrorIs(t, err, core.ErrEmptyCollection)
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o644))

	collection, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, collection.Items, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
