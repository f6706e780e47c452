// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files.
// Each file is one secret: the filename is the key name and the trimmed file
// contents are the value.
//
// Known key files: exa-api-key, gemini-api-key, anthropic-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	ExaAPIKey       = "exa-api-key"
	GeminiAPIKey    = "gemini-api-key"
	AnthropicAPIKey = "anthropic-api-key"
)

// Set maps secret names to values.
type Set map[string]string

// Load reads all files in dir. A missing directory is not an error and
// yields an empty Set. Unreadable files produce a warning on stderr and are
// skipped; dotfiles and empty files are ignored.
func Load(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Set)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Or returns current when it is non-empty, otherwise the secret named key.
// Explicit configuration always wins over the secrets directory.
func (s Set) Or(current, key string) string {
	if current != "" {
		return current
	}
	return s[key]
}

// Names returns the loaded secret names in sorted order, never the values.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
