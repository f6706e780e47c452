// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brief

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// DefaultGeminiModel is used when brief.model is empty.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// contentGenerator is the subset of *genai.GenerativeModel the generator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator asks a Gemini model to write the brief.
type GeminiGenerator struct {
	client *genai.Client
	model  contentGenerator
}

// NewGeminiGenerator validates cfg and opens a Gemini client.
func NewGeminiGenerator(cfg types.BriefConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required for the gemini generator (set brief.api_key, GEMINI_API_KEY, or .secrets/gemini-api-key)")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = DefaultGeminiModel
	}
	model := client.GenerativeModel(name)
	model.SetTemperature(0.4)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(4096)

	return &GeminiGenerator{client: client, model: model}, nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Generate sends the research to Gemini and returns the brief text.
func (g *GeminiGenerator) Generate(ctx context.Context, companyName, research string) (string, error) {
	prompt, err := renderPrompt(companyName, research)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text in Gemini response")
	}
	return stripFences(sb.String()), nil
}
