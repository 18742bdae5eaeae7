package sentences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

type fakeModel struct {
	content string
	err     error
	calls   int
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return f.content, f.err
}

func TestFetchParsesSentences(t *testing.T) {
	model := &fakeModel{content: `{"sentences": [
		{"japanese": "犬が走る。", "english": "The dog runs."},
		{"japanese": "犬を飼っています。", "english": "I have a dog."}
	]}`}

	g := NewWithModel(model)
	payload, err := g.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	require.NoError(t, err)
	assert.Equal(t, "犬が走る。\tThe dog runs.\n犬を飼っています。\tI have a dog.", payload.Text)
	assert.Equal(t, 1, model.calls)
}

func TestFetchStripsCodeFences(t *testing.T) {
	model := &fakeModel{content: "```json\n{\"sentences\": [{\"japanese\": \"猫が寝る。\", \"english\": \"The cat sleeps.\"}]}\n```"}

	g := NewWithModel(model)
	payload, err := g.Fetch(context.Background(), core.VocabItem{Word: "猫", Reading: "ねこ"})
	require.NoError(t, err)
	assert.Equal(t, "猫が寝る。\tThe cat sleeps.", payload.Text)
}

func TestFetchModelErrorIsTransient(t *testing.T) {
	g := NewWithModel(&fakeModel{err: errors.New("connection refused")})
	_, err := g.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	require.Error(t, err)
	assert.True(t, provider.IsTransient(err))
}

func TestFetchMalformedJSONIsTransient(t *testing.T) {
	g := NewWithModel(&fakeModel{content: "sorry, I cannot help with that"})
	_, err := g.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	require.Error(t, err)
	assert.True(t, provider.IsTransient(err))
}

func TestFetchEmptySentencesIsNotFound(t *testing.T) {
	g := NewWithModel(&fakeModel{content: `{"sentences": []}`})
	_, err := g.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	assert.ErrorIs(t, err, provider.ErrNotFound)
}
