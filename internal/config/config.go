package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the formatter
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Config represents the complete configuration for gojj
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Naming  NamingConfig  `yaml:"naming"`
}

// OutputConfig controls how documents are rendered
type OutputConfig struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

// LoggingConfig controls the CLI logger
type LoggingConfig struct {
	Level          string `yaml:"level"`
	WarnDeprecated bool   `yaml:"warn_deprecated"`
}

// NamingConfig controls Go identifier suggestions in path listings
type NamingConfig struct {
	PascalCaseFields bool              `yaml:"pascal_case_fields"`
	FieldMappings    map[string]string `yaml:"field_mappings"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatPretty,
			Indent: 2,
		},
		Logging: LoggingConfig{
			Level:          "info",
			WarnDeprecated: true,
		},
		Naming: NamingConfig{
			PascalCaseFields: true,
			FieldMappings:    make(map[string]string),
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
	if cfg.Naming.FieldMappings == nil {
		cfg.Naming.FieldMappings = make(map[string]string)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the CLI cannot act on
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatPretty, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format '%s': want pretty, json or yaml", c.Output.Format)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 16 {
		return fmt.Errorf("invalid indent %d: want a value between 0 and 16", c.Output.Indent)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".gojj.yml", ".gojj.yaml", "gojj.yml", "gojj.yaml"}

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

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': want debug, info, warn or error", s)
	}
	return level, nil
}

// GetFieldName returns the Go field name for a JSON key, applying naming rules
func (c *Config) GetFieldName(jsonKey string) string {
	// Check custom mappings first
	if mapped, exists := c.Naming.FieldMappings[jsonKey]; exists {
		return mapped
	}

	if c.Naming.PascalCaseFields {
		return strcase.ToCamel(jsonKey)
	}

	return jsonKey
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// An empty format and a negative indent mean the flag was not given.
func LoadConfigWithCLI(configPath, cliFormat string, cliIndent int, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFormat != "" {
		cfg.Output.Format = cliFormat
	}
	if cliIndent >= 0 {
		cfg.Output.Indent = cliIndent
	}
	if cliDebug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
