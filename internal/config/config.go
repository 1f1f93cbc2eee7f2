package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFrames  = 600
	DefaultFPS     = 60.0
	DefaultProbe   = 100
	DefaultDataDir = ".wavesim"
)

// Config holds run-level settings. Physical parameters (grid size,
// domain, Courant number, boundary type, impulse) are fixed in the wave
// package and deliberately absent here.
type Config struct {
	Frames  int     `yaml:"frames"`
	FPS     float64 `yaml:"fps"`
	Probe   int     `yaml:"probe"`
	DataDir string  `yaml:"data_dir"`
	Output  string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Frames:  DefaultFrames,
		FPS:     DefaultFPS,
		Probe:   DefaultProbe,
		DataDir: DefaultDataDir,
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
