package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
pipeline:
  input: "orders.json"
  output: "orders_cleaned.json"
  pretty_print: true
logging:
  level: "info"
  format: "text"
`

func TestLoadConfig(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}

	if cfg.Pipeline.Input != "orders.json" {
		t.Errorf("Input = %q, want orders.json", cfg.Pipeline.Input)
	}

	if cfg.Pipeline.Output != "orders_cleaned.json" {
		t.Errorf("Output = %q, want orders_cleaned.json", cfg.Pipeline.Output)
	}

	if !cfg.Pipeline.PrettyPrint {
		t.Error("PrettyPrint = false, want true")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig expected error for missing file but got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := createTempConfigFile(t, "pipeline: [unclosed")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig expected error for invalid YAML but got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		mutate  func(c *Config)
		name    string
	}{
		{
			name:    "Missing input",
			mutate:  func(c *Config) { c.Pipeline.Input = "" },
			wantErr: ErrMissingInputPath,
		},
		{
			name:    "Missing output",
			mutate:  func(c *Config) { c.Pipeline.Output = "" },
			wantErr: ErrMissingOutputPath,
		},
		{
			name:    "Invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "Invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: ErrInvalidLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}
