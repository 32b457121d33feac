// Package config holds the configuration surface for the extraction
// engine: one nested struct per concern, loaded from YAML or JSON and
// validated with go-playground/validator, the same shape the teacher
// repo uses for its GlobalConfig.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config aggregates every configuration section the engine consumes.
type Config struct {
	Extraction ExtractionConfig `json:"extraction,omitempty" yaml:"extraction,omitempty"`
	Filter     FilterConfig     `json:"filter,omitempty" yaml:"filter,omitempty"`
	HTML       HTMLConfig       `json:"html,omitempty" yaml:"html,omitempty"`
	Context    ContextConfig    `json:"context_config,omitempty" yaml:"context_config,omitempty"`
	Resource   ResourceConfig   `json:"resource,omitempty" yaml:"resource,omitempty"`
	Log        LogConfig        `json:"log,omitempty" yaml:"log,omitempty"`

	// Verbose is loaded from configuration but no package reads it:
	// candidates are not streamed on discovery, and each Source Unit's
	// deduplicated candidates are emitted only after Process returns.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// NewDefaultConfig returns a Config populated with every section's defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Extraction: NewDefaultExtractionConfig(),
		Filter:     NewDefaultFilterConfig(),
		HTML:       NewDefaultHTMLConfig(),
		Context:    NewDefaultContextConfig(),
		Resource:   NewDefaultResourceConfig(),
		Log:        NewDefaultLogConfig(),
	}
}

// LoadConfig loads configuration from a file path resolved by GetConfigPath,
// falling back to defaults when no file is found. YAML is used when the
// extension is .yaml/.yml, JSON otherwise.
func LoadConfig(providedPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", filePath, err)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", filePath, err)
	}

	return cfg, nil
}

func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	if isYAMLFile(filePath) {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}
