package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/portfolio-matching/internal/matching"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "http:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.HTTP.ReadTimeoutSec)
	assert.Equal(t, "data/portfolio.db", cfg.Database.Path)
	assert.Equal(t, matching.DefaultOptions(), cfg.MatchOptions())
}

func TestLoadFile_EnvExpansion(t *testing.T) {
	t.Setenv("PM_DB_PATH", "/tmp/pm.db")
	body := "database:\n  path: ${PM_DB_PATH}\nseed:\n  listings_path: ${PM_SEED:-data/listings.json}\n"

	cfg, err := LoadFile(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pm.db", cfg.Database.Path)
	assert.Equal(t, "data/listings.json", cfg.Seed.ListingsPath)
}

func TestLoadFile_MatchingSection(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "matching:\n  tolerance: 0\n  ignore_location: true\n"))
	require.NoError(t, err)
	assert.Equal(t, matching.Options{Tolerance: 0, IgnoreLocation: true}, cfg.MatchOptions())
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 70000}, Database: DatabaseConfig{Path: "x.db"}}
	assert.EqualError(t, cfg.Validate(), "http.port must be between 1 and 65535, got 70000")
}

func TestValidate_InvalidTolerance(t *testing.T) {
	tol := 1.5
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Path: "x.db"},
		Matching: MatchingConfig{Tolerance: &tol},
	}
	assert.Error(t, cfg.Validate())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
