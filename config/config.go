package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Input is the default roster file; the CLI flag overrides it.
	Input   string        `json:"input"`
	Engine  EngineConfig  `json:"engine"`
	Export  ExportConfig  `json:"export"`
	GitHub  GitHubConfig  `json:"github"`
	Metrics MetricsConfig `json:"metrics"`
}

// Load reads the configuration file (yaml or json by extension), applies
// COHORT_-prefixed environment overrides, fills defaults and validates
// every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. COHORT_GITHUB__TOKEN.
	if err := k.Load(env.Provider("COHORT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cohort_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Engine.SetDefaults()
	cfg.Export.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Export.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.GitHub.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
