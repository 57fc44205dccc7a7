package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadThemeMissingFile(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "theme.yaml"))
	if err != nil {
		t.Fatalf("missing theme file should not be an error: %v", err)
	}
	if *theme != *DefaultTheme() {
		t.Errorf("missing file must yield the default theme")
	}
}

func TestLoadThemeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	data := "light_square: \"#ffffff\"\ncheck: \"#ff000080\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if theme.LightSquare != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("light_square override not applied: %v", theme.LightSquare)
	}
	if theme.CheckColor != (color.RGBA{255, 0, 0, 128}) {
		t.Errorf("check override with alpha not applied: %v", theme.CheckColor)
	}
	if theme.DarkSquare != DefaultTheme().DarkSquare {
		t.Errorf("unset fields must keep defaults")
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("light_square: \"red\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Errorf("non-hex color must be rejected")
	}
}
