// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"time"
)

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ResearchConfig holds settings for the search aggregator.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the search provider URL (default https://api.exa.ai/search).
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// APIKey authenticates against the search provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// TextMaxCharacters bounds the page text returned per hit.
	TextMaxCharacters int `json:"text_max_characters" yaml:"text_max_characters" mapstructure:"text_max_characters"`

	// RateLimitRetries is the number of back-off retries on HTTP 429.
	// Zero disables retrying.
	RateLimitRetries int `json:"rate_limit_retries" yaml:"rate_limit_retries" mapstructure:"rate_limit_retries"`
}

// BriefGenerator selects how research text becomes an account brief.
type BriefGenerator string

const (
	GeneratorTemplate BriefGenerator = "template"
	GeneratorClaude   BriefGenerator = "claude"
	GeneratorGemini   BriefGenerator = "gemini"
)

// BriefConfig holds settings for brief generation.
type BriefConfig struct {
	Generator BriefGenerator `json:"generator" yaml:"generator" mapstructure:"generator"`

	// Model is the LLM identifier for the claude and gemini generators.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	APIKey  string        `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// EmailConfig holds default email generation options.
type EmailConfig struct {
	EmailGenerationOptions `yaml:",inline" mapstructure:",squash"`

	// Seed makes the case-study claims reproducible. Zero seeds from the clock.
	Seed uint64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// ServerConfig holds HTTP front end settings.
type ServerConfig struct {
	Host  string `json:"host" yaml:"host" mapstructure:"host"`
	Port  int    `json:"port" yaml:"port" mapstructure:"port"`
	CORS  bool   `json:"cors" yaml:"cors" mapstructure:"cors"`
	Debug bool   `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// ArchiveConfig holds settings for the SQLite run ledger.
type ArchiveConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the database file. Empty means <output_dir>/runs.db.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

// AppConfig groups every component configuration.
type AppConfig struct {
	OutputDir string         `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
	Log       LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	Research  ResearchConfig `json:"research" yaml:"research" mapstructure:"research"`
	Brief     BriefConfig    `json:"brief" yaml:"brief" mapstructure:"brief"`
	Email     EmailConfig    `json:"email" yaml:"email" mapstructure:"email"`
	Server    ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Archive   ArchiveConfig  `json:"archive" yaml:"archive" mapstructure:"archive"`
}

// ArchivePath returns the configured archive database path, defaulting to
// runs.db inside the output directory.
func (c AppConfig) ArchivePath() string {
	if c.Archive.Path != "" {
		return c.Archive.Path
	}
	return filepath.Join(c.OutputDir, "runs.db")
}
