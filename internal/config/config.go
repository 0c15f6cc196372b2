// Package config provides configuration management for the order pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath  = errors.New("pipeline.input is required")
	ErrMissingOutputPath = errors.New("pipeline.output is required")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat  = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig contains input/output settings for a run.
type PipelineConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Input:       "shoplink.json",
			Output:      "shoplink_cleaned.json",
			PrettyPrint: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.Input == "" {
		return ErrMissingInputPath
	}

	if c.Pipeline.Output == "" {
		return ErrMissingOutputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, LogLevel: %s}",
		c.Pipeline.Input,
		c.Pipeline.Output,
		c.Logging.Level,
	)
}
