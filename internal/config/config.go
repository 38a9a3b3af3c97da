package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsoncanon
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// LimitsConfig bounds the documents the tool will process
type LimitsConfig struct {
	// MaxDepth caps container nesting during serialization. Zero or negative
	// values fall back to the document model's default limit.
	MaxDepth int `yaml:"max_depth"`
}

// OutputConfig controls output generation options
type OutputConfig struct {
	TrailingNewline bool `yaml:"trailing_newline"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxDepth: 0,
		},
		Output: OutputConfig{
			TrailingNewline: true,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsoncanon.yml", ".jsoncanon.yaml", "jsoncanon.yml", "jsoncanon.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. A config file
// supplies the baseline; non-zero CLI values override it.
func LoadConfigWithCLI(configPath string, cliMaxDepth int) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliMaxDepth > 0 {
		cfg.Limits.MaxDepth = cliMaxDepth
	}

	return cfg, nil
}
