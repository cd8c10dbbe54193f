// Package config holds the dotmatrixer CLI settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/flavioheleno/max7219"
	"github.com/flavioheleno/max7219/image1bit"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the dotmatrixer configuration file.
type Config struct {
	// Glyphs used when printing a pattern as text
	OnGlyph  string `yaml:"on_glyph"`
	OffGlyph string `yaml:"off_glyph"`

	// Color of lit cells in show and render (#RRGGBB or #RGB). It must be
	// bright enough to read as lit when a rendered preview is imported.
	OnColor string `yaml:"on_color"`

	// Trim trailing zero rows when printing code
	Trim bool `yaml:"trim"`

	// Pixel size of one cell in rendered previews
	CellSize int `yaml:"cell_size"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		OnGlyph:  "●",
		OffGlyph: "·",
		OnColor:  "#FFFF00",
		Trim:     true,
		CellSize: 50,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/dotmatrixer/config.yaml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dotmatrixer", "config.yaml"), nil
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := checkGlyph("on_glyph", c.OnGlyph, true); err != nil {
		return err
	}
	if err := checkGlyph("off_glyph", c.OffGlyph, false); err != nil {
		return err
	}
	if c.OnGlyph == c.OffGlyph {
		return errors.New("on_glyph and off_glyph must differ")
	}
	if _, err := c.OnRGBA(); err != nil {
		return err
	}
	if c.CellSize < 1 || c.CellSize > 200 {
		return fmt.Errorf("cell_size %d out of range 1..200", c.CellSize)
	}
	return nil
}

// checkGlyph requires a single rune that draw reads back as the given state.
func checkGlyph(name, glyph string, lit bool) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("%s must be a single character", name)
	}
	r, _ := utf8.DecodeRuneInString(glyph)
	on, ok := max7219.SketchGlyph(r)
	if !ok || on != lit {
		state := "unlit"
		if lit {
			state = "lit"
		}
		return fmt.Errorf("%s %q is not a %s sketch cell", name, glyph, state)
	}
	return nil
}

// On returns the glyph for lit cells.
func (c *Config) On() rune {
	r, _ := utf8.DecodeRuneInString(c.OnGlyph)
	return r
}

// Off returns the glyph for unlit cells.
func (c *Config) Off() rune {
	r, _ := utf8.DecodeRuneInString(c.OffGlyph)
	return r
}

// OnRGBA parses OnColor as an opaque color. Colors too dark to be read as lit
// cells by image1bit.BitModel are rejected.
func (c *Config) OnRGBA() (color.RGBA, error) {
	if n := len(c.OnColor); n != 4 && n != 7 {
		return color.RGBA{}, fmt.Errorf("on_color %q is not #RRGGBB", c.OnColor)
	}
	hex, err := colorful.Hex(c.OnColor)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("on_color %q is not #RRGGBB: %w", c.OnColor, err)
	}
	r, g, b := hex.RGB255()
	rgba := color.RGBA{R: r, G: g, B: b, A: 0xFF}
	if !image1bit.BitModel.Convert(rgba).(image1bit.Bit).On {
		return color.RGBA{}, fmt.Errorf("on_color %q is too dark to read back as lit", c.OnColor)
	}
	return rgba, nil
}
