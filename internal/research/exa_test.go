// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

func TestNewExaSearcherRequiresKey(t *testing.T) {
	_, err := NewExaSearcher(types.ResearchConfig{})
	assert.Error(t, err)

	s, err := NewExaSearcher(types.ResearchConfig{APIKey: "k", HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second}})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, s.Client.Timeout)
}

func TestExaSearch(t *testing.T) {
	var got map[string]any
	var gotKey, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotKey = r.Header.Get("x-api-key")
		gotUA = r.Header.Get("User-Agent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"title":"Acme raises","url":"https://n.example/1","publishedDate":"2026-02-01T00:00:00.000Z","score":0.9,"text":"  Acme raised money.  ","highlights":["one.","two."]},
			{"title":"","url":"https://n.example/2","publishedDate":"2026-01-05","highlights":["only highlight."]}
		]}`))
	}))
	defer srv.Close()

	s := &ExaSearcher{Client: srv.Client(), Config: types.ResearchConfig{
		Endpoint:   srv.URL,
		APIKey:     "secret",
		HTTPConfig: types.HTTPConfig{UserAgent: "outreach-engine/test"},
	}}

	hits, err := s.Search(context.Background(), Query{
		Name:           "recent_news",
		Text:           `"Acme" news`,
		NumResults:     5,
		UseAutoprompt:  true,
		StartPublished: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "outreach-engine/test", gotUA)
	assert.Equal(t, `"Acme" news`, got["query"])
	assert.Equal(t, 5.0, got["numResults"])
	assert.Equal(t, true, got["useAutoprompt"])
	assert.Equal(t, "2025-09-15", got["startPublishedDate"])
	contents := got["contents"].(map[string]any)
	assert.Equal(t, 2000.0, contents["text"].(map[string]any)["maxCharacters"])
	assert.Equal(t, 3.0, contents["highlights"].(map[string]any)["numSentences"])

	require.Len(t, hits, 2)
	assert.Equal(t, "Acme raised money.", hits[0].Text)
	assert.Equal(t, "one. two.", hits[0].Highlight)
	assert.Equal(t, 2026, hits[0].PublishedDate.Year())
	assert.Equal(t, time.January, hits[1].PublishedDate.Month())
	assert.Empty(t, hits[1].Text)
	assert.Equal(t, "only highlight.", hits[1].Highlight)
}

func TestExaSearchOmitsOptionalFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	s := &ExaSearcher{Client: srv.Client(), Config: types.ResearchConfig{Endpoint: srv.URL, APIKey: "k", TextMaxCharacters: 500}}
	hits, err := s.Search(context.Background(), Query{Text: "q", NumResults: 3})
	require.NoError(t, err)
	assert.Empty(t, hits)

	_, hasDate := got["startPublishedDate"]
	_, hasAuto := got["useAutoprompt"]
	assert.False(t, hasDate)
	assert.False(t, hasAuto)
	assert.Equal(t, 500.0, got["contents"].(map[string]any)["text"].(map[string]any)["maxCharacters"])
}

func TestExaSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer srv.Close()

	s := &ExaSearcher{Client: srv.Client(), Config: types.ResearchConfig{Endpoint: srv.URL, APIKey: "bad"}}
	_, err := s.Search(context.Background(), Query{Text: "q", NumResults: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestExaSearchMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := &ExaSearcher{Client: srv.Client(), Config: types.ResearchConfig{Endpoint: srv.URL, APIKey: "k"}}
	_, err := s.Search(context.Background(), Query{Text: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing Exa response")
}
