package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "API Documentation", cfg.Title)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "openapi.json", cfg.OutputPath)
	assert.Empty(t, cfg.Servers)
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
title: Payments API
version: 2.3.0
description: Payment processing endpoints
outputPath: docs/openapi.yaml
servers:
  - url: https://api.example.com
    description: Production
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "Payments API", cfg.Title)
		assert.Equal(t, "2.3.0", cfg.Version)
		assert.Equal(t, "Payment processing endpoints", cfg.Description)
		assert.Equal(t, "docs/openapi.yaml", cfg.OutputPath)
		require.Len(t, cfg.Servers, 1)
		assert.Equal(t, "https://api.example.com", cfg.Servers[0].URL)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "title: Minimal API\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "Minimal API", cfg.Title)
		assert.Equal(t, "1.0.0", cfg.Version)
		assert.Equal(t, "openapi.json", cfg.OutputPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "title: [unclosed\n")
		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testswag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
