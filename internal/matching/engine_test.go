package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
)

func TestEngine_DefaultsAndOverrides(t *testing.T) {
	listings := scenarioListings()
	listings[1].Price = 1_700_000.0

	wide := NewEngine(Options{Tolerance: 0.2})
	assert.Len(t, wide.PortfoliosForRequest(scenarioRequest(), listings), 2)
	assert.Len(t, wide.PortfoliosForRequest(scenarioRequest(), listings, WithTolerance(0)), 1)
	assert.Len(t, wide.RankPortfolios(scenarioRequest(), listings), 2)

	listing := baseListing()
	listing.Price = 1_700_000.0
	got := wide.RequestsForPortfolio(&listing, []domain.Request{*scenarioRequest()})
	assert.Len(t, got, 1)
	assert.Empty(t, wide.RequestsForPortfolio(&listing, []domain.Request{*scenarioRequest()}, WithTolerance(0.05)))
	assert.Equal(t, Options{Tolerance: 0.2}, wide.Defaults())
}

func TestLoadOptionsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matching.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tolerance: 0.15\nignore_location: true\n"), 0o600))

	o, err := LoadOptionsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Options{Tolerance: 0.15, IgnoreLocation: true}, o)
}

func TestLoadOptionsFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matching.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ignore_location": true, "unknown": 1}`), 0o600))

	o, err := LoadOptionsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTolerance, o.Tolerance)
	assert.True(t, o.IgnoreLocation)
}

func TestLoadOptionsFromFile_Errors(t *testing.T) {
	_, err := LoadOptionsFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tolerance: 3\n"), 0o600))
	o, err := LoadOptionsFromFile(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultOptions(), o)
}
