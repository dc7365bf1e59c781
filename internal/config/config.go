// Package config provides configuration loading for pnet.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/olivierh59500/particle-network-go/internal/network"
	"github.com/olivierh59500/particle-network-go/internal/render"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// DefaultLabels is the stock label set.
var DefaultLabels = []string{
	"JavaScript", "CSS", "UI/UX", "SEO", "Analytics", "Hosting",
	"WebGL", "Motion", "React", "Svelte", "Next.js",
}

// Config contains all pnet configuration settings.
type Config struct {
	// Network holds the simulation tunables.
	Network NetworkConfig `yaml:"network"`

	// Style controls how frames look.
	Style StyleConfig `yaml:"style"`

	// Chrome holds settings for decoration around the network.
	Chrome ChromeConfig `yaml:"chrome"`

	// Window configures the desktop window host.
	Window WindowConfig `yaml:"window"`

	// Logging configures operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// NetworkConfig configures the particle field.
type NetworkConfig struct {
	// Count is the fixed number of particles.
	Count int `yaml:"count"`

	// MaxSpeed caps the spawn speed. It must exceed network.MinSpeed.
	MaxSpeed float64 `yaml:"max_speed"`

	// ConnectionDistance is the distance below which two particles are linked.
	ConnectionDistance float64 `yaml:"connection_distance"`

	// LabelProbability is the chance a particle carries a label. Range: 0.0 to 1.0
	LabelProbability float64 `yaml:"label_probability"`

	// Labels is the set labels are drawn from.
	Labels []string `yaml:"labels"`

	// Seed fixes the layout. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// StyleConfig configures colors and sizes. Colors are "#rrggbb" strings.
type StyleConfig struct {
	LineWidth    float64 `yaml:"line_width"`
	LinkColor    string  `yaml:"link_color"`
	MaxLinkAlpha float64 `yaml:"max_link_alpha"`
	NodeRadius   float64 `yaml:"node_radius"`
	NodeColor    string  `yaml:"node_color"`
	LabelColor   string  `yaml:"label_color"`
	Background   string  `yaml:"background"`
}

// ChromeConfig configures the backdrop.
type ChromeConfig struct {
	// ParallaxStrength scales how far the backdrop shifts with the pointer.
	ParallaxStrength float64 `yaml:"parallax_strength"`

	// Backdrop enables the glow layer.
	Backdrop bool `yaml:"backdrop"`
}

// WindowConfig configures the ebiten window and the frame rate of other hosts.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
}

// LoggingConfig configures pnet's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `yaml:"level"`
}

// Default returns a Config with the stock landing page values.
func Default() *Config {
	return &Config{
		Network: NetworkConfig{
			Count:              80,
			MaxSpeed:           0.4,
			ConnectionDistance: 180,
			LabelProbability:   0.16,
			Labels:             append([]string(nil), DefaultLabels...),
		},
		Style: StyleConfig{
			LineWidth:    1,
			LinkColor:    "#ffffff",
			MaxLinkAlpha: 0.08,
			NodeRadius:   3.2,
			NodeColor:    "#ff7555",
			LabelColor:   "#f6c9a3",
			Background:   "#0b0d12",
		},
		Chrome: ChromeConfig{
			ParallaxStrength: 0.015,
			Backdrop:         true,
		},
		Window: WindowConfig{
			Title:  "Particle Network",
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from path, if non-empty, and then applies
// environment variables.
// Order: defaults -> file -> environment variables
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks the preconditions the simulation and renderer rely on
// but do not check themselves.
func (c *Config) Validate() error {
	n := c.Network
	if n.Count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalid, n.Count)
	}
	if n.MaxSpeed <= network.MinSpeed {
		return fmt.Errorf("%w: max_speed must exceed %g, got %g", ErrInvalid, network.MinSpeed, n.MaxSpeed)
	}
	if n.ConnectionDistance <= 0 {
		return fmt.Errorf("%w: connection_distance must be positive, got %g", ErrInvalid, n.ConnectionDistance)
	}
	if n.LabelProbability < 0 || n.LabelProbability > 1 {
		return fmt.Errorf("%w: label_probability must be between 0 and 1, got %g", ErrInvalid, n.LabelProbability)
	}

	if c.Style.MaxLinkAlpha < 0 || c.Style.MaxLinkAlpha > 1 {
		return fmt.Errorf("%w: max_link_alpha must be between 0 and 1, got %g", ErrInvalid, c.Style.MaxLinkAlpha)
	}
	for name, v := range map[string]string{
		"link_color":  c.Style.LinkColor,
		"node_color":  c.Style.NodeColor,
		"label_color": c.Style.LabelColor,
		"background":  c.Style.Background,
	} {
		if _, err := ParseHex(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: invalid log level: %s (valid: info, debug, trace, or empty for default)", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// RenderStyle converts the style section. Call Validate first; unparsable
// colors fall back to the defaults.
func (c *Config) RenderStyle() render.Style {
	st := render.DefaultStyle()
	st.LineWidth = c.Style.LineWidth
	st.MaxLinkAlpha = c.Style.MaxLinkAlpha
	st.NodeRadius = c.Style.NodeRadius
	if col, err := ParseHex(c.Style.LinkColor); err == nil {
		st.LinkColor = col
	}
	if col, err := ParseHex(c.Style.NodeColor); err == nil {
		st.NodeColor = col
	}
	if col, err := ParseHex(c.Style.LabelColor); err == nil {
		st.LabelColor = col
	}
	return st
}

// BackgroundColor returns the parsed background, opaque black if unparsable.
func (c *Config) BackgroundColor() color.NRGBA {
	col, err := ParseHex(c.Style.Background)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return col
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("PNET_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PNET_COUNT: %w", err)
		}
		config.Network.Count = n
	}

	if v := os.Getenv("PNET_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PNET_SEED: %w", err)
		}
		config.Network.Seed = n
	}

	if v := os.Getenv("PNET_CONNECTION_DISTANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PNET_CONNECTION_DISTANCE: %w", err)
		}
		config.Network.ConnectionDistance = f
	}

	if v := os.Getenv("PNET_LABEL_PROBABILITY"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PNET_LABEL_PROBABILITY: %w", err)
		}
		config.Network.LabelProbability = f
	}

	if v := os.Getenv("PNET_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	return nil
}
