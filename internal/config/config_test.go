package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8000")
	t.Setenv("AGENT_PANEL_MODE", AgentPanelAll)
	t.Setenv("REDIS_ADDR", "")
	// Некорректное значение игнорируется, берется значение по умолчанию
	t.Setenv("MAP_ZOOM", "far")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 3000*time.Millisecond, cfg.IncidentsInterval)
	assert.Equal(t, 3500*time.Millisecond, cfg.AgentsInterval)
	assert.Equal(t, 4000*time.Millisecond, cfg.HistoryInterval)
	assert.Equal(t, 5000*time.Millisecond, cfg.StatsInterval)
	assert.Equal(t, 12, cfg.MapZoom)
	assert.False(t, cfg.AlertsEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_URL", "https://sim.example.org")
	t.Setenv("AGENT_PANEL_MODE", AgentPanelActiveOnly)
	t.Setenv("POLL_INCIDENTS_INTERVAL", "1s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("API_KEYS", "alpha, beta,,")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://sim.example.org", cfg.APIURL)
	assert.Equal(t, AgentPanelActiveOnly, cfg.AgentPanelMode)
	assert.Equal(t, time.Second, cfg.IncidentsInterval)
	assert.True(t, cfg.AlertsEnabled())
	assert.Equal(t, []string{"alpha", "beta"}, cfg.APIKeys)
}

func TestLoadConfig_InvalidAPIURL(t *testing.T) {
	t.Setenv("API_URL", "localhost:8000")
	t.Setenv("AGENT_PANEL_MODE", AgentPanelAll)

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "API_URL")
}

func TestLoadConfig_InvalidPanelMode(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8000")
	t.Setenv("AGENT_PANEL_MODE", "responding")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "AGENT_PANEL_MODE")
}

func TestLoadConfig_NonPositiveInterval(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8000")
	t.Setenv("AGENT_PANEL_MODE", AgentPanelAll)
	t.Setenv("POLL_STATS_INTERVAL", "0s")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "POLL_STATS_INTERVAL")
}
