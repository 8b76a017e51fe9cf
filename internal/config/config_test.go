package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()

	assert.Equal("0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(10*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(30*time.Second, cfg.Server.WriteTimeout.Duration)
	assert.Equal("*", cfg.CORS.AllowedOrigin)
	assert.Equal("info", cfg.Log.Level)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
host = "127.0.0.1"
port = 9000
read_timeout = "5s"

[log]
level = "debug"
`
	assert.NoError(os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)

	assert.Equal("127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal("debug", cfg.Log.Level)
	// untouched sections keep their defaults
	assert.Equal(30*time.Second, cfg.Server.WriteTimeout.Duration)
	assert.Equal("*", cfg.CORS.AllowedOrigin)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
read_timeout = "not a duration"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
