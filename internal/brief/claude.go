// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brief

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// DefaultClaudeModel is used when brief.model is empty.
const DefaultClaudeModel = "claude-sonnet-4-5-20250929"

// claudeAPIURL is the Claude API endpoint. Package-level var for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// ClaudeGenerator asks the Claude Messages API to write the brief.
type ClaudeGenerator struct {
	APIKey string
	Model  string
	Client *http.Client
}

// NewClaudeGenerator validates cfg and returns a generator.
func NewClaudeGenerator(cfg types.BriefConfig) (*ClaudeGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required for the claude generator (set brief.api_key, ANTHROPIC_API_KEY, or .secrets/anthropic-api-key)")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultClaudeModel
	}
	return &ClaudeGenerator{
		APIKey: cfg.APIKey,
		Model:  model,
		Client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate sends the research to Claude and returns the brief text.
func (c *ClaudeGenerator) Generate(ctx context.Context, companyName, research string) (string, error) {
	prompt, err := renderPrompt(companyName, research)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	bodyBytes, err := json.Marshal(claudeRequest{
		Model:     c.Model,
		MaxTokens: 4096,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding Claude response: %w", err)
	}

	var sb strings.Builder
	for _, block := range cResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in Claude API response")
	}
	return stripFences(sb.String()), nil
}
