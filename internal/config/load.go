package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// applyEnv lets GEMINI_API_KEYS (comma separated) or GEMINI_API_KEY replace
// the keys from the file, and GEMINI_MODEL override the model.
func (c *Config) applyEnv() {
	if keys := splitKeys(os.Getenv("GEMINI_API_KEYS")); len(keys) > 0 {
		c.Gemini.APIKeys = keys
	} else if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		c.Gemini.APIKeys = []string{key}
	}
	if model := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); model != "" {
		c.Gemini.Model = model
	}
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
