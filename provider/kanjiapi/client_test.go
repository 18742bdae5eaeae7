package kanjiapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kotoba/core"
	"github.com/poiesic/kotoba/provider"
)

func TestFetchReturnsReadings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/%E7%8A%AC", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kun_readings":["いぬ","いぬ-"],"on_readings":["ケン"]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	payload, err := client.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	require.NoError(t, err)
	assert.Equal(t, "kun: いぬ | いぬ-\non: ケン", payload.Text)
}

func TestFetchUsesFirstKanjiOfCompound(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kun_readings":["やま"],"on_readings":["サン"]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), core.VocabItem{Word: "お山さん", Reading: "おやまさん"})
	require.NoError(t, err)
	assert.Equal(t, "/山", requested)
}

func TestFetchKanaOnlyWordIsNotFound(t *testing.T) {
	client := New(WithBaseURL("http://127.0.0.1:0"))
	_, err := client.Fetch(context.Background(), core.VocabItem{Word: "さようなら", Reading: "さようなら"})
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestFetchMissingKanjiIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	assert.ErrorIs(t, err, provider.ErrNotFound)
	assert.False(t, provider.IsTransient(err))
}

func TestFetchServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	require.Error(t, err)
	assert.True(t, provider.IsTransient(err))
	assert.False(t, errors.Is(err, provider.ErrNotFound))
}

func TestFetchEmptyReadingsIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kun_readings":[],"on_readings":[]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Fetch(context.Background(), core.VocabItem{Word: "犬", Reading: "いぬ"})
	assert.ErrorIs(t, err, provider.ErrNotFound)
}
