package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/kanbanpro/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	tempDir := isolate(t)

	themeFile := filepath.Join(tempDir, "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  inprogress: "#00FF00"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.InProgress != "#00FF00" {
		t.Errorf("Expected inprogress to be #00FF00, got %s", cfg.ColorScheme.InProgress)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Todo == "" {
		t.Error("Expected todo to have default value")
	}
}

func TestMissingThemeFileIsIgnored(t *testing.T) {
	tempDir := isolate(t)
	t.Setenv(EnvThemeFile, filepath.Join(tempDir, "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestPresetBase(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "monochrome", Todo: "#ABCDEF"}
	scheme.ApplyDefaults()

	mono := colors.Monochrome()
	if scheme.Todo != "#ABCDEF" {
		t.Errorf("Todo = %s, want custom #ABCDEF", scheme.Todo)
	}
	if scheme.Complete != mono.Complete {
		t.Errorf("Complete = %s, want monochrome %s", scheme.Complete, mono.Complete)
	}
	if scheme.Accent != mono.Accent {
		t.Errorf("Accent = %s, want monochrome %s", scheme.Accent, mono.Accent)
	}
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	if got := colors.GetPreset("solarized"); got.Preset != "default" {
		t.Errorf("GetPreset(solarized).Preset = %s, want default", got.Preset)
	}
}
