package spec

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Config is the generation configuration consumed by the synthesizer and
// the CLI. It is produced by callers (a YAML file, flags, environment),
// never by the core.
type Config struct {
	Title       string    `yaml:"title" json:"title"`
	Version     string    `yaml:"version" json:"version"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	OutputPath  string    `yaml:"outputPath" json:"outputPath"`
	Servers     []*Server `yaml:"servers,omitempty" json:"servers,omitempty"`
}

// DefaultConfig returns a config with placeholder info and a conventional
// output path.
func DefaultConfig() *Config {
	return &Config{
		Title:      "API Documentation",
		Version:    "1.0.0",
		OutputPath: "openapi.json",
	}
}

// LoadConfig reads a YAML config file. Missing optional fields fall back
// to DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spec: failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("spec: failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
