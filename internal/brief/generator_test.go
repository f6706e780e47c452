// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brief

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

const sampleResearch = `# EXA RESEARCH RESULTS: INITECH

## COMPANY OVERVIEW
### Source 1: Initech
https://initech.example/about
Initech makes TPS reports.

### Source 2: Initech on LinkedIn
https://www.linkedin.com/company/initech
Software company.

## RECENT NEWS
### Source 1: Initech expands
https://initech.example/about
Duplicate URL.

## ADDITIONAL SEARCH METADATA
- Company Name: Initech
- Research Date: 2026-03-15
`

func TestTemplateGenerator(t *testing.T) {
	text, err := TemplateGenerator{}.Generate(context.Background(), "", sampleResearch)
	require.NoError(t, err)

	b := Parse(text)
	assert.Equal(t, "Initech", b.CompanyName)
	assert.Equal(t, []string{
		"Company website",
		"LinkedIn profiles",
		"Recent press releases",
		"Industry analysis reports",
		"https://initech.example/about",
		"https://www.linkedin.com/company/initech",
	}, b.Sources)
	assert.True(t, strings.HasPrefix(b.AccountSnapshot, "Initech is a rapidly growing"))
}

func TestTemplateGeneratorUnknownCompany(t *testing.T) {
	text, err := TemplateGenerator{}.Generate(context.Background(), "  ", "no footer here")
	require.NoError(t, err)
	assert.Contains(t, text, "## COMPANY NAME\nUnknown Company\n")
}

func TestNew(t *testing.T) {
	g, err := New(types.BriefConfig{})
	require.NoError(t, err)
	assert.IsType(t, TemplateGenerator{}, g)

	_, err = New(types.BriefConfig{Generator: types.GeneratorClaude})
	assert.Error(t, err)

	_, err = New(types.BriefConfig{Generator: types.GeneratorGemini})
	assert.Error(t, err)

	_, err = New(types.BriefConfig{Generator: "markov"})
	assert.ErrorContains(t, err, "unknown brief generator")

	g, err = New(types.BriefConfig{Generator: types.GeneratorClaude, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultClaudeModel, g.(*ClaudeGenerator).Model)
}

func TestClaudeGenerator(t *testing.T) {
	var got claudeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(claudeResponse{Content: []claudeContent{
			{Type: "text", Text: "```markdown\n## COMPANY NAME\nInitech\n```"},
		}})
	}))
	defer srv.Close()

	orig := claudeAPIURL
	claudeAPIURL = srv.URL
	t.Cleanup(func() { claudeAPIURL = orig })

	g := &ClaudeGenerator{APIKey: "test-key", Model: "claude-test", Client: srv.Client()}
	text, err := g.Generate(context.Background(), "Initech", sampleResearch)
	require.NoError(t, err)
	assert.Equal(t, "## COMPANY NAME\nInitech", text)

	assert.Equal(t, "claude-test", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Contains(t, got.Messages[0].Content, "brief about Initech")
	assert.Contains(t, got.Messages[0].Content, "Initech makes TPS reports.")
}

func TestClaudeGeneratorErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http error", http.StatusTooManyRequests, `{"error":"rate limited"}`, "Claude API returned 429"},
		{"bad json", http.StatusOK, `nope`, "decoding Claude response"},
		{"no text", http.StatusOK, `{"content":[{"type":"tool_use"}]}`, "no text content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			orig := claudeAPIURL
			claudeAPIURL = srv.URL
			t.Cleanup(func() { claudeAPIURL = orig })

			g := &ClaudeGenerator{APIKey: "k", Model: "m", Client: srv.Client()}
			_, err := g.Generate(context.Background(), "Initech", "research")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

type fakeModel struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if t, ok := parts[0].(genai.Text); ok {
			f.prompt = string(t)
		}
	}
	return f.resp, f.err
}

func TestGeminiGenerator(t *testing.T) {
	fm := &fakeModel{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("## COMPANY NAME\n"), genai.Text("Initech\n")}},
		}},
	}}
	g := &GeminiGenerator{model: fm}

	text, err := g.Generate(context.Background(), "Initech", sampleResearch)
	require.NoError(t, err)
	assert.Equal(t, "## COMPANY NAME\nInitech", text)
	assert.Contains(t, fm.prompt, "REMOTE.COM SOLUTION FOCUS")
	assert.NoError(t, g.Close())
}

func TestGeminiGeneratorErrors(t *testing.T) {
	_, err := (&GeminiGenerator{model: &fakeModel{err: errors.New("quota")}}).Generate(context.Background(), "A", "r")
	assert.ErrorContains(t, err, "quota")

	_, err = (&GeminiGenerator{model: &fakeModel{resp: &genai.GenerateContentResponse{}}}).Generate(context.Background(), "A", "r")
	assert.ErrorContains(t, err, "no content generated")
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "body", stripFences("```\nbody\n```"))
	assert.Equal(t, "body", stripFences("  ```md\nbody```  "))
	assert.Equal(t, "plain text", stripFences("plain text"))
}
