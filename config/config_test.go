package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/mortgage-engine/config"
	"github.com/warp/mortgage-engine/factory"
)

func TestDefault_EmbeddedConfigParses(t *testing.T) {
	// GIVEN: No config file at all
	// WHEN: Loading the embedded defaults
	// THEN: Server and scenario sections are populated and the scenario
	//       builds into a valid engine input

	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 60*time.Minute, cfg.CacheTTL())
	assert.Equal(t, float64(300000), cfg.Scenario.Price)

	sj := cfg.DefaultScenario(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	_, err = factory.NewScenarioFactory().Build(sj)
	assert.NoError(t, err)
}

func TestDefaultScenario_FillsEmptyStartDate(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	require.Empty(t, cfg.Scenario.StartDate)

	sj := cfg.DefaultScenario(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-06-15", sj.StartDate)
}

func TestDefaultScenario_KeepsExplicitStartDate(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Scenario.StartDate = "2024-01-01"

	sj := cfg.DefaultScenario(time.Now())
	assert.Equal(t, "2024-01-01", sj.StartDate)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	// GIVEN: A config file setting only a few fields
	// WHEN: Loading
	// THEN: Set fields win, everything else keeps the embedded defaults

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":3000"
scenario:
  price: 450000
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, float64(450000), cfg.Scenario.Price)
	// Untouched defaults survive
	assert.Equal(t, 60, cfg.Server.CacheTTLMinutes)
	assert.Equal(t, 6.5, cfg.Scenario.Rate)
}

func TestLoad_MissingFile_Errors(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
