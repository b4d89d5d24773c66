package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  ripple: "#00FF00"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("YEARPICK_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Ripple != "#00FF00" {
		t.Errorf("Expected ripple to be #00FF00, got %s", cfg.ColorScheme.Ripple)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Normal == "" {
		t.Error("Expected normal to have default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("YEARPICK_THEME_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestPresetFillsMissingColors(t *testing.T) {
	writeConfig(t, `theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Expected custom accent, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Normal != MonochromeColorScheme().Normal {
		t.Errorf("Expected monochrome normal, got %s", cfg.ColorScheme.Normal)
	}
}

func TestUsePreset(t *testing.T) {
	cfg := Default()
	cfg.ColorScheme.Accent = "#123456"

	if err := cfg.UsePreset("monochrome"); err != nil {
		t.Fatalf("UsePreset failed: %v", err)
	}
	want := MonochromeColorScheme()
	if cfg.ColorScheme.Accent != want.Accent {
		t.Errorf("Expected accent %q, got %q", want.Accent, cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Preset != "monochrome" {
		t.Errorf("Expected preset monochrome, got %q", cfg.ColorScheme.Preset)
	}

	if err := cfg.UsePreset("neon"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}
