package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when config.yaml is absent or leaves fields unset.
const (
	DefaultModel       = "haiku"
	DefaultPageSize    = 5
	DefaultAITimeout   = 60 * time.Second
	configFileName     = "config.yaml"
	defaultAITimeoutIn = 60
)

// Config holds user-tunable settings read from config.yaml in the
// chronicle config directory.
type Config struct {
	// Model is the LLM model used for summary and commit-message generation.
	Model string `yaml:"model"`
	// Provider forces an LLM provider; empty means infer from the model name.
	Provider string `yaml:"provider"`
	// PageSize is the timeline page size.
	PageSize int `yaml:"page_size"`
	// AITimeoutSeconds bounds a single generation request.
	AITimeoutSeconds int `yaml:"ai_timeout_seconds"`
}

// AITimeout returns the generation request timeout as a duration.
func (c *Config) AITimeout() time.Duration {
	if c.AITimeoutSeconds <= 0 {
		return DefaultAITimeout
	}
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// Load reads config.yaml from the config directory.
// A missing file yields defaults; a malformed file is an error.
func Load() (*Config, error) {
	return loadFrom(filepath.Join(Dir(), configFileName))
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		Model:            DefaultModel,
		PageSize:         DefaultPageSize,
		AITimeoutSeconds: defaultAITimeoutIn,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return cfg, nil
}
