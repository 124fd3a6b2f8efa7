package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble-sort"
	DefaultSize      = 10
	DefaultCase      = "average"
	DefaultSpeedMS   = 500
	DefaultDataDir   = ".algolab"
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Case      string `yaml:"case"`
	SpeedMS   int    `yaml:"speed_ms"`
	Seed      int64  `yaml:"seed"`
	DataDir   string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Case:      DefaultCase,
		SpeedMS:   DefaultSpeedMS,
		DataDir:   DefaultDataDir,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Speed converts the configured step interval to a duration; values
// below 1ms fall back to the default.
func (c *Config) Speed() time.Duration {
	ms := c.SpeedMS
	if ms < 1 {
		ms = DefaultSpeedMS
	}
	return time.Duration(ms) * time.Millisecond
}

// ClampSize fits the configured size into an algorithm's [min, max]
// range; zero means "use the algorithm's default".
func (c *Config) ClampSize(min, max, def int) int {
	size := c.Size
	if size == 0 {
		size = def
	}
	if size < min {
		size = min
	}
	if size > max {
		size = max
	}
	return size
}
