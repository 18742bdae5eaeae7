package hanviet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

func TestFetchSingleCharacter(t *testing.T) {
	p := New()
	payload, err := p.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	require.NoError(t, err)
	assert.Equal(t, "KHUYỂN", payload.Text)
}

func TestFetchJoinsCharacters(t *testing.T) {
	p := New()
	payload, err := p.Fetch(context.Background(), core.VocabItem{Word: "学生", Reading: "がくせい"})
	require.NoError(t, err)
	assert.Equal(t, "HỌC SINH", payload.Text)
}

func TestFetchSkipsUnmappedKana(t *testing.T) {
	p := New()
	payload, err := p.Fetch(context.Background(), core.VocabItem{Word: "食べる", Reading: "たべる"})
	require.NoError(t, err)
	assert.Equal(t, "THỰC", payload.Text)
}

func TestFetchNoMappedCharactersIsNotFound(t *testing.T) {
	p := New()
	_, err := p.Fetch(context.Background(), core.VocabItem{Word: "これ", Reading: "これ"})
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestLoadMapDropsComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanviet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"_comment": "x", "机": "KỶ"}`), 0o644))

	m, err := LoadMap(path)
	require.NoError(t, err)
	assert.NotContains(t, m, "_comment")

	p := New(WithMap(m))
	payload, err := p.Fetch(context.Background(), core.VocabItem{Word: "机", Reading: "つくえ"})
	require.NoError(t, err)
	assert.Equal(t, "KỶ", payload.Text)
}

func TestLoadMapBadFile(t *testing.T) {
	_, err := LoadMap(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
