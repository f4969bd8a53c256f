// Package config loads tool configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort        = 5006
	DefaultChartWidth  = 80
	DefaultChartHeight = 12
	DefaultTheme       = "phosphor"
)

type Config struct {
	// Port is the HTTP dashboard bind port.
	Port int `yaml:"port" env:"FIELDVIZ_PORT"`
	// ChartWidth and ChartHeight size terminal charts in characters.
	ChartWidth  int    `yaml:"chart_width" env:"FIELDVIZ_CHART_WIDTH"`
	ChartHeight int    `yaml:"chart_height" env:"FIELDVIZ_CHART_HEIGHT"`
	Theme       string `yaml:"theme" env:"FIELDVIZ_THEME"`
	// DataDir prefixes relative input and output paths. Empty means the
	// current directory.
	DataDir string `yaml:"data_dir" env:"FIELDVIZ_DATA_DIR"`
}

func Default() *Config {
	return &Config{
		Port:        DefaultPort,
		ChartWidth:  DefaultChartWidth,
		ChartHeight: DefaultChartHeight,
		Theme:       DefaultTheme,
	}
}

// Load merges a YAML file over the defaults, then applies FIELDVIZ_*
// environment overrides on top. An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv applies FIELDVIZ_* environment overrides in place.
func (c *Config) FromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve joins a relative path onto DataDir. Absolute paths and an
// empty DataDir pass through unchanged.
func (c *Config) Resolve(path string) string {
	if c.DataDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
