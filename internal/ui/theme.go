package ui

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},  // Soft yellow-green
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// themeFile is the YAML shape of a theme override. All fields are
// optional hex colors ("#rrggbb" or "#rrggbbaa"); unset fields keep
// the default.
type themeFile struct {
	LightSquare    string `yaml:"light_square"`
	DarkSquare     string `yaml:"dark_square"`
	SelectedSquare string `yaml:"selected_square"`
	LegalMoveColor string `yaml:"legal_move"`
	LastMoveColor  string `yaml:"last_move"`
	CheckColor     string `yaml:"check"`
	Background     string `yaml:"background"`
	TextColor      string `yaml:"text"`
}

// LoadTheme reads a YAML theme override, layered over the defaults.
// A missing file is not an error and yields the default theme.
func LoadTheme(path string) (*Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return theme, nil
	}
	if err != nil {
		return nil, err
	}

	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	for _, field := range []struct {
		hex string
		dst *color.RGBA
	}{
		{tf.LightSquare, &theme.LightSquare},
		{tf.DarkSquare, &theme.DarkSquare},
		{tf.SelectedSquare, &theme.SelectedSquare},
		{tf.LegalMoveColor, &theme.LegalMoveColor},
		{tf.LastMoveColor, &theme.LastMoveColor},
		{tf.CheckColor, &theme.CheckColor},
		{tf.Background, &theme.Background},
		{tf.TextColor, &theme.TextColor},
	} {
		if field.hex == "" {
			continue
		}
		c, err := parseHexColor(field.hex)
		if err != nil {
			return nil, fmt.Errorf("parse theme %s: %w", path, err)
		}
		*field.dst = c
	}

	return theme, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]

	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(hex) {
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	return color.RGBA{r, g, b, a}, nil
}
