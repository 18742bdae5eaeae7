package reading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kotoba/core"
)

func newProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New()
	require.NoError(t, err)
	return p
}

func TestFetchSingleKanji(t *testing.T) {
	p := newProvider(t)

	tests := []struct {
		word string
		want string
	}{
		{"犬", "いぬ"},
		{"猫", "ねこ"},
		{"山", "やま"},
	}
	for _, tt := range tests {
		payload, err := p.Fetch(context.Background(), core.VocabItem{Word: tt.word, Reading: tt.want})
		require.NoError(t, err, "word %q", tt.word)
		assert.Equal(t, tt.want, payload.Text, "word %q", tt.word)
	}
}

func TestFetchCompoundWord(t *testing.T) {
	p := newProvider(t)
	payload, err := p.Fetch(context.Background(), core.VocabItem{Word: "日本語", Reading: "にほんご"})
	require.NoError(t, err)
	assert.Equal(t, "にほんご", payload.Text)
}

func TestFetchKanaPassesThrough(t *testing.T) {
	p := newProvider(t)
	payload, err := p.Fetch(context.Background(), core.VocabItem{Word: "これ", Reading: "これ"})
	require.NoError(t, err)
	assert.Equal(t, "これ", payload.Text)
}

func TestKatakanaToHiragana(t *testing.T) {
	assert.Equal(t, "いぬ", katakanaToHiragana("イヌ"))
	assert.Equal(t, "こーひー", katakanaToHiragana("コーヒー"))
	assert.Equal(t, "abc", katakanaToHiragana("abc"))
}
