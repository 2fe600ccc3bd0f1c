package sketch

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sketch/surface"
)

// Style defaults.
const (
	DefaultColor  = "#000000"
	DefaultStroke = 1.0
	DefaultFont   = "12px Arial"

	// DefaultTextSize is the pixel size every text command is drawn at,
	// whatever size its font descriptor names.
	DefaultTextSize = 13.0

	// DefaultTextWeight is the weight every text command is drawn at.
	DefaultTextWeight = surface.WeightSemiBold
)

// Config holds the binding policy and the style defaults of a Context.
//
// The embedded surface.Config is flattened when decoding, so a single TOML
// table carries both:
//
//	default_width = 1200
//	min_auto_size = 100
//	default_color = "#333333"
//	text_size = 13
type Config struct {
	surface.Config

	DefaultColor  string  `toml:"default_color"`
	DefaultStroke float64 `toml:"default_stroke"`
	DefaultFont   string  `toml:"default_font"`
	TextSize      float64 `toml:"text_size"`
	TextWeight    int     `toml:"text_weight"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Config:        surface.DefaultConfig(),
		DefaultColor:  DefaultColor,
		DefaultStroke: DefaultStroke,
		DefaultFont:   DefaultFont,
		TextSize:      DefaultTextSize,
		TextWeight:    DefaultTextWeight,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Config == (surface.Config{}) {
		c.Config = d.Config
	}
	if c.DefaultColor == "" {
		c.DefaultColor = d.DefaultColor
	}
	if !(c.DefaultStroke > 0) {
		c.DefaultStroke = d.DefaultStroke
	}
	if c.DefaultFont == "" {
		c.DefaultFont = d.DefaultFont
	}
	if !(c.TextSize > 0) {
		c.TextSize = d.TextSize
	}
	if c.TextWeight <= 0 {
		c.TextWeight = d.TextWeight
	}
	return c
}

// DecodeConfig reads a TOML configuration from r. Keys missing from the
// document keep their DefaultConfig values; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("sketch: decode config: %w", err)
	}
	return cfg.withDefaults(), nil
}
