// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/outreach-engine/internal/httputil"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// DefaultExaEndpoint is the Exa search API.
const DefaultExaEndpoint = "https://api.exa.ai/search"

const defaultTextMaxCharacters = 2000

// ExaSearcher queries the Exa neural search API.
type ExaSearcher struct {
	Client *http.Client
	Config types.ResearchConfig
}

// NewExaSearcher returns a searcher with an HTTP client honouring cfg.Timeout.
func NewExaSearcher(cfg types.ResearchConfig) (*ExaSearcher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Exa API key is required (set research.api_key, EXA_API_KEY, or .secrets/exa-api-key)")
	}
	return &ExaSearcher{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}, nil
}

type exaRequest struct {
	Query              string       `json:"query"`
	NumResults         int          `json:"numResults"`
	UseAutoprompt      bool         `json:"useAutoprompt,omitempty"`
	StartPublishedDate string       `json:"startPublishedDate,omitempty"`
	Contents           *exaContents `json:"contents,omitempty"`
}

type exaContents struct {
	Text       exaTextOptions      `json:"text"`
	Highlights exaHighlightOptions `json:"highlights"`
}

type exaTextOptions struct {
	MaxCharacters int `json:"maxCharacters"`
}

type exaHighlightOptions struct {
	NumSentences int `json:"numSentences"`
}

type exaResponse struct {
	Results []exaResult `json:"results"`
}

type exaResult struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	PublishedDate string   `json:"publishedDate"`
	Score         float64  `json:"score"`
	Text          string   `json:"text"`
	Highlights    []string `json:"highlights"`
}

// Search posts q to Exa and converts the results to SearchHits.
func (e *ExaSearcher) Search(ctx context.Context, q Query) ([]types.SearchHit, error) {
	maxChars := e.Config.TextMaxCharacters
	if maxChars <= 0 {
		maxChars = defaultTextMaxCharacters
	}

	body := exaRequest{
		Query:         q.Text,
		NumResults:    q.NumResults,
		UseAutoprompt: q.UseAutoprompt,
		Contents: &exaContents{
			Text:       exaTextOptions{MaxCharacters: maxChars},
			Highlights: exaHighlightOptions{NumSentences: 3},
		},
	}
	if !q.StartPublished.IsZero() {
		body.StartPublishedDate = q.StartPublished.UTC().Format(time.DateOnly)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := e.Config.Endpoint
	if endpoint == "" {
		endpoint = DefaultExaEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", e.Config.APIKey)
	if e.Config.UserAgent != "" {
		req.Header.Set("User-Agent", e.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, e.Client, req, e.Config.RateLimitRetries)
	if err != nil {
		return nil, fmt.Errorf("Exa API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("Exa API returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var er exaResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing Exa response: %w", err)
	}

	hits := make([]types.SearchHit, 0, len(er.Results))
	for _, r := range er.Results {
		hit := types.SearchHit{
			Title: r.Title,
			URL:   r.URL,
			Text:  strings.TrimSpace(r.Text),
			Score: r.Score,
		}
		if len(r.Highlights) > 0 {
			hit.Highlight = strings.Join(r.Highlights, " ")
		}
		if r.PublishedDate != "" {
			if t, err := parseExaDate(r.PublishedDate); err == nil {
				hit.PublishedDate = t
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// parseExaDate accepts full RFC 3339 timestamps and bare dates.
func parseExaDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
