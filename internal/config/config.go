package config

import (
	"fmt"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-sparkle/internal/pixel"
)

// Anim describes one playlist entry.
type Anim struct {
	Effect       string  `yaml:"effect"` // "sparkle" | "sparkle_pulse"
	Name         string  `yaml:"name,omitempty"`
	Color        string  `yaml:"color"` // hex, e.g. "#ff9911"
	IntervalMs   int     `yaml:"interval_ms,omitempty"`
	NumSparkles  int     `yaml:"num_sparkles,omitempty"`
	PeriodS      float64 `yaml:"period_s,omitempty"`
	MinIntensity float64 `yaml:"min_intensity,omitempty"`
	MaxIntensity float64 `yaml:"max_intensity,omitempty"`
	HoldS        float64 `yaml:"hold_s,omitempty"` // 0 = hold forever
}

// ParseColor decodes the hex color string.
func (a Anim) ParseColor() (pixel.Color, error) {
	hex := a.Color
	if hex == "" {
		return pixel.Color{}, fmt.Errorf("animation %q has no color", a.Effect)
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return pixel.Color{}, fmt.Errorf("parse color %q: %w", a.Color, err)
	}
	r, g, b := c.RGB255()
	return pixel.RGB(r, g, b), nil
}

// Interval returns the frame interval, defaulting to 100ms.
func (a Anim) Interval() time.Duration {
	if a.IntervalMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(a.IntervalMs) * time.Millisecond
}

type SPI struct {
	Port string `yaml:"port,omitempty"` // spireg name; "" = first available
}

type Config struct {
	Driver      string `yaml:"driver"` // "spi" | "screen" | "sim"
	Pixels      int    `yaml:"pixels"`
	Channels    int    `yaml:"channels"` // 3 = RGB, 4 = RGBW
	SPI         SPI    `yaml:"spi,omitempty"`
	PreviewAddr string `yaml:"preview_addr,omitempty"` // "" disables the ws preview
	Loop        bool   `yaml:"loop"`
	Playlist    []Anim `yaml:"playlist"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
