// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Set
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ExaAPIKey, "  exa_abc123  \n")
				writeFile(t, dir, GeminiAPIKey, "gm_xyz789")
				return dir
			},
			want: Set{ExaAPIKey: "exa_abc123", GeminiAPIKey: "gm_xyz789"},
		},
		{
			name: "returns empty set for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Set{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, AnthropicAPIKey, "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "ignored")
				return dir
			},
			want: Set{AnthropicAPIKey: "valid-key"},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFile(t, dir, ExaAPIKey, "k")
				return dir
			},
			want: Set{ExaAPIKey: "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetOr(t *testing.T) {
	s := Set{ExaAPIKey: "from-file"}

	assert.Equal(t, "explicit", s.Or("explicit", ExaAPIKey))
	assert.Equal(t, "from-file", s.Or("", ExaAPIKey))
	assert.Equal(t, "", s.Or("", GeminiAPIKey))
}

func TestSetNames(t *testing.T) {
	s := Set{GeminiAPIKey: "b", ExaAPIKey: "a"}
	assert.Equal(t, []string{ExaAPIKey, GeminiAPIKey}, s.Names())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
