package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config carries the CLI's tunables. Values come from, in increasing
// precedence: built-in defaults, the --config YAML file, explicit flags.
type Config struct {
	Distance    int     `yaml:"distance"`     // Road positions; market at distance-1
	Capacity    int     `yaml:"capacity"`     // Carrying capacity
	Bananas     int     `yaml:"bananas"`      // Starting bananas
	Workers     int     `yaml:"workers"`      // Worker goroutines; 0 = engine default
	MetricsAddr string  `yaml:"metrics_addr"` // Prometheus listen address; empty = off
	FPS         float64 `yaml:"fps"`          // Animation frame rate
}

// defaultConfig matches the classic instance the project grew up on.
func defaultConfig() Config {
	return Config{
		Distance: 15,
		Capacity: 5,
		Bananas:  100,
		FPS:      4,
	}
}

// loadConfig reads a YAML file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig assembles the effective configuration for a command:
// defaults, then the config file if given, then any flag the user set
// explicitly.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *int
	}{
		{"distance", &cfg.Distance},
		{"capacity", &cfg.Capacity},
		{"bananas", &cfg.Bananas},
		{"workers", &cfg.Workers},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			v, err := flags.GetInt(o.name)
			if err != nil {
				return cfg, err
			}
			*o.dst = v
		}
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("fps") {
		cfg.FPS, _ = flags.GetFloat64("fps")
	}
	return cfg, nil
}
