package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/njchilds90/poly1d"
)

// Config holds server settings. Every field is optional in the file.
type Config struct {
	Port int `toml:"port" yaml:"port"`
	// MaxBodyBytes bounds one HTTP request body or one stdio line.
	MaxBodyBytes int `toml:"max_body_bytes" yaml:"max_body_bytes"`
	// CORSOrigins enables CORS for the listed origins when non-empty.
	CORSOrigins        []string `toml:"cors_origins" yaml:"cors_origins"`
	DisableCompression bool     `toml:"disable_compression" yaml:"disable_compression"`

	// Epsilon is the default imaginary-part tolerance for real_roots.
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
	// Variable is the display symbol for polynomials sent without "var".
	Variable string `toml:"variable" yaml:"variable"`
}

func defaultConfig() Config {
	return Config{
		Port:         8080,
		MaxBodyBytes: 1 << 20, // 1 MiB
		Epsilon:      poly1d.Epsilon,
		Variable:     poly1d.DefaultVariable,
	}
}

// loadConfig reads path over the defaults. The format follows the file
// extension: .toml, .yaml or .yml. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if strings.TrimSpace(c.Variable) == "" {
		return fmt.Errorf("variable must not be blank")
	}
	return nil
}

func (c Config) toolOptions() poly1d.ToolOptions {
	return poly1d.ToolOptions{Epsilon: c.Epsilon, Variable: c.Variable}
}
