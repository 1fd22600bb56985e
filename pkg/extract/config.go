package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool-wide defaults loadable from a YAML file. Command-line
// flags override whatever is set here.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Probe  ProbeConfig  `yaml:"probe"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig configures where and how frames are written
type OutputConfig struct {
	Dir         string `yaml:"dir"`          // Output directory
	Format      string `yaml:"format"`       // jpg, png
	JPEGQuality int    `yaml:"jpeg_quality"` // 1-100
}

// ProbeConfig configures the ffprobe metadata fallback
type ProbeConfig struct {
	Fallback *bool `yaml:"fallback"` // Use ffprobe when decoder metadata is unusable
}

// LogConfig configures logging
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// FallbackEnabled reports whether the ffprobe fallback is on (default true).
func (p ProbeConfig) FallbackEnabled() bool {
	return p.Fallback == nil || *p.Fallback
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if c.Output.Format == "" {
		c.Output.Format = "jpg"
	}
	if c.Output.JPEGQuality == 0 {
		c.Output.JPEGQuality = 95
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
