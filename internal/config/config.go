// Package config loads and saves the puzzlein configuration from
// ~/.config/puzzlein/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/puzzlein/puzzlein/internal/paths"
	"github.com/spf13/viper"
)

// DataConfig controls where input files are looked up.
type DataConfig struct {
	// Dir is the data root relative to each solution file.
	Dir string `mapstructure:"dir"`
}

// ScaffoldConfig controls what `puzzlein new` generates.
type ScaffoldConfig struct {
	// Extension of generated solution files, without the dot.
	Extension string `mapstructure:"extension"`
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the full puzzlein configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "../../data",
		},
		Scaffold: ScaffoldConfig{
			Extension: "go",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load loads configuration from file or returns defaults
func Load() (*Config, error) {
	v := viper.New()

	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	v.SetConfigFile(configPath)

	// Read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	configFile, err := paths.ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

// ConfigExists reports whether a config file is present on disk.
func ConfigExists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ToTOML renders the configuration as an annotated TOML document.
func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# puzzlein Configuration
# Generated by: puzzlein config init

# ============================================================================
# DATA DIRECTORY
# Where input/test files live, relative to each solution file
# ============================================================================
[data]
dir = "%s"

# ============================================================================
# SCAFFOLDING
# Settings for 'puzzlein new'
# ============================================================================
[scaffold]
# Extension of generated solution files
extension = "%s"

# ============================================================================
# LOGGING
# ============================================================================
[logging]
level = "%s"
file = "%s"
`,
		c.Data.Dir,
		c.Scaffold.Extension,
		c.Logging.Level,
		c.Logging.File,
	)
}
