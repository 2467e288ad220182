package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 72
	DefaultHeight    = 22
	DefaultFPS       = 60
	DefaultSpeed     = 1.0
	DefaultParameter = 0.0
	DefaultTheme     = "cyberpunk"
)

type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FPS       int     `yaml:"fps"`
	Speed     float64 `yaml:"speed"`
	Parameter float64 `yaml:"parameter"`
	Theme     string  `yaml:"theme"`
	Sound     bool    `yaml:"sound"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FPS:       DefaultFPS,
		Speed:     DefaultSpeed,
		Parameter: DefaultParameter,
		Theme:     DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate clamps interactive fields into their domains and rejects
// only values that would break the frame loop outright.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.Parameter < 0 {
		c.Parameter = 0
	}
	if c.Parameter > 1 {
		c.Parameter = 1
	}
	return nil
}
