// Package config loads render configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the top-level configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Scene  string       `yaml:"scene"`
	Output string       `yaml:"output"`
}

// RenderConfig controls image size and sampling
type RenderConfig struct {
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxBounces      int   `yaml:"max_bounces"`
	Workers         int   `yaml:"workers"` // 0 means one per CPU
	Seed            int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:           800,
			Height:          600,
			SamplesPerPixel: 100,
			MaxBounces:      50,
		},
		Scene:  "default",
		Output: "render.png",
	}
}

// Load reads a YAML configuration file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the renderer would reject
func (c Config) Validate() error {
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("config: image dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.SamplesPerPixel <= 0 {
		return fmt.Errorf("config: samples_per_pixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxBounces <= 0 {
		return fmt.Errorf("config: max_bounces must be positive, got %d", r.MaxBounces)
	}
	if r.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", r.Workers)
	}
	if c.Scene == "" {
		return fmt.Errorf("config: scene name must not be empty")
	}
	return nil
}
