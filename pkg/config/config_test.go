package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalYahoo = `
environment: test
provider:
  type: yahoo
`

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, minimalYahoo))
	require.NoError(t, err)
	require.Equal(t, 8080, c.Server.Port)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, 15*time.Second, c.Provider.Timeout)
	require.Equal(t, 3, c.Provider.Retry.MaxAttempts)
	require.Equal(t, 20*time.Second, c.Provider.Retry.Delay)
	require.Equal(t, 7, c.Forecast.HorizonDays)
}

func TestLoadFullConfig(t *testing.T) {
	c, err := Load(writeConfig(t, `
environment: production
server:
  port: 9090
  write_timeout: 120s
provider:
  type: twelvedata
  timeout: 10s
  twelvedata:
    api_key: from-file
    output_size: 30
  retry:
    enabled: true
    max_attempts: 5
    delay: 2s
forecast:
  lookback_days: 90
  horizon_days: 14
`))
	require.NoError(t, err)
	require.Equal(t, 9090, c.Server.Port)
	require.Equal(t, 120*time.Second, c.Server.WriteTimeout)
	require.Equal(t, "twelvedata", c.Provider.Type)
	require.Equal(t, 30, c.Provider.TwelveData.OutputSize)
	require.True(t, c.Provider.Retry.Enabled)
	require.Equal(t, 5, c.Provider.Retry.MaxAttempts)
	require.Equal(t, 2*time.Second, c.Provider.Retry.Delay)
	require.Equal(t, 90, c.Forecast.LookbackDays)
	require.Equal(t, 14, c.Forecast.HorizonDays)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing environment", "provider:\n  type: yahoo\n"},
		{"missing provider type", "environment: test\n"},
		{"unknown provider", "environment: test\nprovider:\n  type: bloomberg\n"},
		{"twelvedata without key", "environment: test\nprovider:\n  type: twelvedata\n"},
		{"alphavantage without key", "environment: test\nprovider:\n  type: alphavantage\n"},
		{"negative lookback", "environment: test\nprovider:\n  type: yahoo\nforecast:\n  lookback_days: -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("PROVIDER", "alphavantage")
	t.Setenv("ALPHAVANTAGE_API_KEY", "from-env")

	c, err := LoadWithEnv(writeConfig(t, minimalYahoo))
	require.NoError(t, err)
	require.Equal(t, 3000, c.Server.Port)
	require.Equal(t, "alphavantage", c.Provider.Type)
	require.Equal(t, "from-env", c.Provider.AlphaVantage.APIKey)
}

func TestLoadWithEnvRevalidates(t *testing.T) {
	// Switching to a keyed provider via env without supplying its key
	// must fail, not silently run unauthenticated.
	t.Setenv("PROVIDER", "twelvedata")

	_, err := LoadWithEnv(writeConfig(t, minimalYahoo))
	require.Error(t, err)
}
