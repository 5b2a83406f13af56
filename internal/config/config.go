package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the gojson tool
type Config struct {
	Format  FormatConfig  `yaml:"format"`
	Numbers NumbersConfig `yaml:"numbers"`
	Objects ObjectsConfig `yaml:"objects"`
	Limits  LimitsConfig  `yaml:"limits"`
	Keys    KeysConfig    `yaml:"keys"`
	Dev     DevConfig     `yaml:"dev"`
}

// FormatConfig controls output formatting
type FormatConfig struct {
	Pretty bool   `yaml:"pretty"`
	Indent string `yaml:"indent"`
}

// NumbersConfig controls numeric literal handling
type NumbersConfig struct {
	ArbitraryPrecision bool `yaml:"arbitrary_precision"`
}

// ObjectsConfig controls object key ordering
type ObjectsConfig struct {
	PreserveOrder bool `yaml:"preserve_order"`
	SortKeys      bool `yaml:"sort_keys"`
}

// LimitsConfig controls resource bounds
type LimitsConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// KeysConfig controls object key rewriting
type KeysConfig struct {
	// Case is one of "", "snake", "camel", "pascal", "kebab"
	Case string `yaml:"case"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Pretty: false,
			Indent: "  ",
		},
		Numbers: NumbersConfig{
			ArbitraryPrecision: false,
		},
		Objects: ObjectsConfig{
			PreserveOrder: true,
			SortKeys:      false,
		},
		Limits: LimitsConfig{
			MaxDepth: 128,
		},
		Keys: KeysConfig{
			Case: "",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// Validate checks field consistency. SortKeys wins over PreserveOrder
// so that enabling it is a one-line change.
func (c *Config) Validate() error {
	if c.Objects.SortKeys {
		c.Objects.PreserveOrder = false
	}
	if c.Limits.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.Limits.MaxDepth)
	}
	switch c.Keys.Case {
	case "", "snake", "camel", "pascal", "kebab":
	default:
		return fmt.Errorf("unknown key case %q (want snake, camel, pascal, or kebab)", c.Keys.Case)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file, starting from defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".gojson.yml", ".gojson.yaml", "gojson.yml", "gojson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}
