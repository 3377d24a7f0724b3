package app

import (
	"errors"
	"fmt"
	"strings"
)

// Output formats accepted by Config.OutputFormat.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// ManifestPaths are files or directories holding .hcl, .yaml and .yml
	// manifests.
	ManifestPaths []string
	// Project overrides the project named by the manifests.
	Project string

	LogFormat    string
	LogLevel     string
	OutputFormat string
	// Metrics makes Run print the collected metrics after the build output.
	Metrics bool
}

// NewConfig validates cfg, fills defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ManifestPaths) == 0 {
		return nil, errors.New("at least one manifest path is required")
	}
	for _, p := range cfg.ManifestPaths {
		if strings.TrimSpace(p) == "" {
			return nil, errors.New("manifest paths cannot be empty")
		}
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputYAML
	}
	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	if cfg.OutputFormat != OutputYAML && cfg.OutputFormat != OutputJSON {
		return nil, fmt.Errorf("invalid output format %q: must be 'yaml' or 'json'", cfg.OutputFormat)
	}

	cfg.ManifestPaths = append([]string(nil), cfg.ManifestPaths...)
	return &cfg, nil
}
