// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/outreach-engine/internal/research"
	"github.com/pdiddy/outreach-engine/internal/secrets"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

const envPrefix = "OUTREACH_ENGINE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", "output")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("research.api_key", "")
	v.SetDefault("research.endpoint", research.DefaultExaEndpoint)
	v.SetDefault("research.timeout", 30*time.Second)
	v.SetDefault("research.user_agent", "outreach-engine/"+version)
	v.SetDefault("research.text_max_characters", 2000)
	v.SetDefault("research.rate_limit_retries", 0)

	v.SetDefault("brief.generator", string(types.GeneratorTemplate))
	v.SetDefault("brief.model", "")
	v.SetDefault("brief.api_key", "")
	v.SetDefault("brief.timeout", 60*time.Second)

	v.SetDefault("email.include_subjects", true)
	v.SetDefault("email.max_emails_per_contact", types.MaxEmailsPerContact)
	v.SetDefault("email.personalize", true)
	v.SetDefault("email.seed", 0)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.cors", true)
	v.SetDefault("server.debug", false)

	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.path", "")
}

// bindEnv maps OUTREACH_ENGINE_<SECTION>_<KEY> onto config keys and binds the
// conventional unprefixed variable names as aliases.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	aliases := map[string]string{
		"research.api_key": "EXA_API_KEY",
		"server.port":      "PORT",
	}
	for key, alias := range aliases {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, prefixed, alias)
	}
}

// briefKeySources names the environment variable and secret file that supply
// the brief generator's API key when brief.api_key is unset.
var briefKeySources = map[types.BriefGenerator][2]string{
	types.GeneratorClaude: {"ANTHROPIC_API_KEY", secrets.AnthropicAPIKey},
	types.GeneratorGemini: {"GEMINI_API_KEY", secrets.GeminiAPIKey},
}

// decodeConfig unmarshals v into an AppConfig and fills empty API keys from
// the environment and the secrets directory.
func decodeConfig(v *viper.Viper, s secrets.Set) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Research.APIKey = s.Or(cfg.Research.APIKey, secrets.ExaAPIKey)

	cfg.Brief.Generator = types.BriefGenerator(strings.ToLower(string(cfg.Brief.Generator)))
	if src, ok := briefKeySources[cfg.Brief.Generator]; ok && cfg.Brief.APIKey == "" {
		cfg.Brief.APIKey = s.Or(os.Getenv(src[0]), src[1])
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	return cfg, nil
}
