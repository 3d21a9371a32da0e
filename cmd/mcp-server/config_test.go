package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/poly1d"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, poly1d.Epsilon, cfg.Epsilon)
	assert.Equal(t, "x", cfg.Variable)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "poly.toml", `
port = 9090
epsilon = 1e-5
variable = "t"
cors_origins = ["https://example.com"]
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 1e-5, cfg.Epsilon)
	assert.Equal(t, "t", cfg.Variable)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, defaultConfig().MaxBodyBytes, cfg.MaxBodyBytes)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "poly.yml", `
max_body_bytes: 4096
disable_compression: true
variable: s
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.MaxBodyBytes)
	assert.True(t, cfg.DisableCompression)
	assert.Equal(t, "s", cfg.Variable)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"unknown extension", "poly.json", `{}`, "unsupported format"},
		{"bad toml", "poly.toml", `port = `, "poly.toml"},
		{"bad yaml", "poly.yaml", "port: [", "poly.yaml"},
		{"negative epsilon", "poly.toml", `epsilon = -1.0`, "epsilon must be positive"},
		{"port range", "poly.yaml", "port: 70000", "port out of range"},
		{"blank variable", "poly.toml", `variable = " "`, "variable must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
