package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thenoetrevino/yearpick/internal/config/colors"
	"github.com/thenoetrevino/yearpick/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Years       YearRange   `yaml:"years"`
}

// YearRange holds the configured bounds of the picker.
// Bounds stay untyped so that a malformed value ("abc") falls back to the
// default instead of failing the whole file.
type YearRange struct {
	Min any `yaml:"min,omitempty"`
	Max any `yaml:"max,omitempty"`
}

// MinYear returns the lower bound, or 1900 when it is unset or not a number
func (y YearRange) MinYear() int {
	return models.NormalizeBound(y.Min, models.DefaultMinYear)
}

// MaxYear returns the upper bound, or 2100 when it is unset or not a number
func (y YearRange) MaxYear() int {
	return models.NormalizeBound(y.Max, models.DefaultMaxYear)
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Years: YearRange{
			Min: models.DefaultMinYear,
			Max: models.DefaultMaxYear,
		},
	}
}

// loadThemeFile loads and merges theme from YEARPICK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("YEARPICK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file unreadable, ignoring", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("theme file malformed, ignoring", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.Override(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, returning defaults if it doesn't exist
func LoadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	// Load theme from YEARPICK_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "yearpick", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "yearpick", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Years.Min == nil {
		c.Years.Min = models.DefaultMinYear
	}
	if c.Years.Max == nil {
		c.Years.Max = models.DefaultMaxYear
	}
}

// UsePreset replaces the color scheme with the named preset, discarding
// colors from the file
func (c *Config) UsePreset(name string) error {
	if !slices.Contains(colors.PresetNames(), name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(colors.PresetNames(), ", "))
	}
	c.ColorScheme = *colors.GetPreset(name)
	c.ColorScheme.Preset = name
	return nil
}
