package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	if config.Network.Count != 80 {
		t.Errorf("expected Count 80, got %d", config.Network.Count)
	}
	if config.Network.MaxSpeed != 0.4 {
		t.Errorf("expected MaxSpeed 0.4, got %f", config.Network.MaxSpeed)
	}
	if config.Network.ConnectionDistance != 180 {
		t.Errorf("expected ConnectionDistance 180, got %f", config.Network.ConnectionDistance)
	}
	if config.Network.LabelProbability != 0.16 {
		t.Errorf("expected LabelProbability 0.16, got %f", config.Network.LabelProbability)
	}
	if config.Chrome.ParallaxStrength != 0.015 {
		t.Errorf("expected ParallaxStrength 0.015, got %f", config.Chrome.ParallaxStrength)
	}
	if len(config.Network.Labels) != 11 {
		t.Errorf("expected 11 default labels, got %d", len(config.Network.Labels))
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}

	// Defaults must not share the package label slice.
	config.Network.Labels[0] = "changed"
	if DefaultLabels[0] != "JavaScript" {
		t.Error("Default leaked the DefaultLabels backing array")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
network:
  count: 120
  connection_distance: 150
  labels: [Go, Rust]
  seed: 42

style:
  node_color: "#00ff00"

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Network.Count != 120 {
		t.Errorf("expected Count 120, got %d", config.Network.Count)
	}
	if config.Network.ConnectionDistance != 150 {
		t.Errorf("expected ConnectionDistance 150, got %f", config.Network.ConnectionDistance)
	}
	if len(config.Network.Labels) != 2 || config.Network.Labels[1] != "Rust" {
		t.Errorf("expected labels [Go Rust], got %v", config.Network.Labels)
	}
	if config.Network.Seed != 42 {
		t.Errorf("expected Seed 42, got %d", config.Network.Seed)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}

	// Unset fields keep their defaults.
	if config.Network.MaxSpeed != 0.4 {
		t.Errorf("expected default MaxSpeed 0.4, got %f", config.Network.MaxSpeed)
	}
	if config.Style.LabelColor != "#f6c9a3" {
		t.Errorf("expected default LabelColor, got %s", config.Style.LabelColor)
	}

	if st := config.RenderStyle(); st.NodeColor != (color.NRGBA{G: 0xff, A: 0xff}) {
		t.Errorf("expected green node color, got %v", st.NodeColor)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("network: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PNET_COUNT", "33")
	t.Setenv("PNET_SEED", "9")
	t.Setenv("PNET_CONNECTION_DISTANCE", "99.5")
	t.Setenv("PNET_LABEL_PROBABILITY", "0.5")
	t.Setenv("PNET_LOG_LEVEL", "trace")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Network.Count != 33 {
		t.Errorf("expected Count 33, got %d", config.Network.Count)
	}
	if config.Network.Seed != 9 {
		t.Errorf("expected Seed 9, got %d", config.Network.Seed)
	}
	if config.Network.ConnectionDistance != 99.5 {
		t.Errorf("expected ConnectionDistance 99.5, got %f", config.Network.ConnectionDistance)
	}
	if config.Network.LabelProbability != 0.5 {
		t.Errorf("expected LabelProbability 0.5, got %f", config.Network.LabelProbability)
	}
	if config.Logging.Level != "trace" {
		t.Errorf("expected Logging.Level 'trace', got '%s'", config.Logging.Level)
	}
}

func TestLoadEnvOverrideMalformed(t *testing.T) {
	t.Setenv("PNET_COUNT", "lots")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric PNET_COUNT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative count", func(c *Config) { c.Network.Count = -1 }},
		{"speed at floor", func(c *Config) { c.Network.MaxSpeed = 0.05 }},
		{"zero distance", func(c *Config) { c.Network.ConnectionDistance = 0 }},
		{"probability above 1", func(c *Config) { c.Network.LabelProbability = 1.5 }},
		{"alpha above 1", func(c *Config) { c.Style.MaxLinkAlpha = 2 }},
		{"bad color", func(c *Config) { c.Style.NodeColor = "coral" }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)
			err := config.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff7555", color.NRGBA{R: 0xff, G: 0x75, B: 0x55, A: 0xff}, false},
		{"f6c9a3", color.NRGBA{R: 0xf6, G: 0xc9, B: 0xa3, A: 0xff}, false},
		{"#ffffff14", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
