// Package config handles planetool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Config holds all tool settings.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Build    BuildConfig    `yaml:"build"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// BuildConfig holds mesh build scheduling settings.
type BuildConfig struct {
	Workers           int `yaml:"workers"`            // point pass goroutines, 1 disables parallelism
	ParallelThreshold int `yaml:"parallel_threshold"` // minimum vertex count for a parallel point pass
}

// DefaultsConfig holds the values used for newly created planes.
type DefaultsConfig struct {
	Name          string  `yaml:"name"`
	Width         float32 `yaml:"width"`
	Length        float32 `yaml:"length"`
	SubdivisionsX uint32  `yaml:"subdivisions_x"`
	SubdivisionsZ uint32  `yaml:"subdivisions_z"`
}

// OutputConfig holds settings for written files.
type OutputConfig struct {
	Format string `yaml:"format"` // spec encoding: json or yaml
	Dir    string `yaml:"dir"`    // directory for built meshes
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Build: BuildConfig{
			Workers:           runtime.NumCPU(),
			ParallelThreshold: 4096,
		},
		Defaults: DefaultsConfig{
			Name:   "Default Plane",
			Width:  20,
			Length: 20,
		},
		Output: OutputConfig{
			Format: "yaml",
			Dir:    ".",
		},
	}
}

// Validate reports settings no command can work with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	if c.Build.Workers < 1 {
		errs = append(errs, fmt.Errorf("build.workers: must be at least 1, got %d", c.Build.Workers))
	}
	if c.Build.ParallelThreshold < 0 {
		errs = append(errs, fmt.Errorf("build.parallel_threshold: must not be negative, got %d", c.Build.ParallelThreshold))
	}
	if !(c.Defaults.Width > 0) || !(c.Defaults.Length > 0) {
		errs = append(errs, fmt.Errorf("defaults: dimensions must be positive, got %vx%v", c.Defaults.Width, c.Defaults.Length))
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}
	return errors.Join(errs...)
}
