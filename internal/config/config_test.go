package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/concierge/internal/content"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"CONCIERGE_LANGUAGE", "CONCIERGE_CONTENT", "CONCIERGE_LOG_LEVEL",
		"CONCIERGE_LOG_FORMAT", "CONCIERGE_ADDR", "CONCIERGE_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
	return home
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, content.English, cfg.Locale())
}

func TestLoadMissingReturnsNil(t *testing.T) {
	useTempHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.False(t, Exists())
}

func TestSaveAndLoad(t *testing.T) {
	home := useTempHome(t)

	cfg := DefaultConfig()
	cfg.Language = "es"
	cfg.TopK = 5
	require.NoError(t, cfg.Save())
	assert.True(t, Exists())
	assert.FileExists(t, filepath.Join(home, ".config", "concierge", "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, content.Spanish, loaded.Locale())
	assert.Equal(t, 5, loaded.TopK)
	assert.Equal(t, cfg.Server, loaded.Server)
}

func TestLoadFileKeepsDefaultsForUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: es\n"), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_k: [1"), 0600))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnvOverrides(t *testing.T) {
	useTempHome(t)
	t.Setenv("CONCIERGE_LANGUAGE", "es-MX")
	t.Setenv("CONCIERGE_LOG_LEVEL", "debug")
	t.Setenv("CONCIERGE_ADDR", ":9090")
	t.Setenv("CONCIERGE_ALLOWED_ORIGINS", "https://vanguardconsulting.io, ,https://www.vanguardconsulting.io")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, content.Spanish, cfg.Locale())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://vanguardconsulting.io", "https://www.vanguardconsulting.io"}, cfg.Server.AllowedOrigins)
}

func TestResolveRejectsInvalidOverrides(t *testing.T) {
	useTempHome(t)
	t.Setenv("CONCIERGE_LANGUAGE", "fr")

	_, err := Resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "top_k zero", mutate: func(c *Config) { c.TopK = 0 }, want: "top_k"},
		{name: "top_k too large", mutate: func(c *Config) { c.TopK = 11 }, want: "top_k"},
		{name: "negative chunk", mutate: func(c *Config) { c.ChunkSize = -1 }, want: "chunk_size"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, want: "log level"},
		{name: "log format", mutate: func(c *Config) { c.Log.Format = "xml" }, want: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTables(t *testing.T) {
	cfg := DefaultConfig()
	tables, err := cfg.Tables()
	require.NoError(t, err)
	assert.NotEmpty(t, tables.ServicesFor(content.English).Services)

	cfg.ContentPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Tables()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
