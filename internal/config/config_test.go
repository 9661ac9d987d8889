package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, p := range knownProviders {
		t.Setenv(p.envPrefix+"_API_KEY", "")
		t.Setenv(p.envPrefix+"_API_BASE_URL", "")
	}
	t.Setenv("INR_CONVERSION_RATE", "")
	t.Setenv("LATENCY_PLANS_MS", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Providers, 5)
	for _, p := range cfg.Providers {
		assert.Equal(t, DefaultAPIKey, p.APIKey, p.ID)
		assert.NotEmpty(t, p.BaseURL, p.ID)
	}

	hdfc, ok := cfg.Provider("hdfc")
	require.True(t, ok)
	assert.Equal(t, "https://api.hdfcergo.com/insurance/v1", hdfc.BaseURL)

	assert.Equal(t, 83.0, cfg.Catalog.INRConversionRate)
	assert.Equal(t, time.Second, cfg.Latency.Plans)
	assert.Equal(t, 800*time.Millisecond, cfg.Latency.PlanDetails)
	assert.Equal(t, 1200*time.Millisecond, cfg.Latency.Submission)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GODIGIT_API_KEY", "secret")
	t.Setenv("GODIGIT_API_BASE_URL", "http://localhost:9000")
	t.Setenv("LATENCY_PLANS_MS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	digit, ok := cfg.Provider("goDigit")
	require.True(t, ok)
	assert.Equal(t, "secret", digit.APIKey)
	assert.Equal(t, "http://localhost:9000", digit.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Latency.Plans)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LATENCY_SUBMISSION_MS", "soon")
	t.Setenv("INR_CONVERSION_RATE", "-2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1200*time.Millisecond, cfg.Latency.Submission)
	assert.Equal(t, 83.0, cfg.Catalog.INRConversionRate)
}

func TestProvider_Unknown(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	_, ok := cfg.Provider("acme")
	assert.False(t, ok)
}

func TestLatencyOrderWarnings(t *testing.T) {
	tests := []struct {
		name    string
		latency LatencyConfig
		want    int
	}{
		{"defaults", LatencyConfig{Plans: time.Second, PlanDetails: 800 * time.Millisecond, Submission: 1200 * time.Millisecond}, 0},
		{"details slower than list", LatencyConfig{Plans: time.Second, PlanDetails: 2 * time.Second, Submission: 3 * time.Second}, 1},
		{"submission faster than list", LatencyConfig{Plans: time.Second, PlanDetails: 500 * time.Millisecond, Submission: 900 * time.Millisecond}, 1},
		{"both inverted", LatencyConfig{Plans: time.Second, PlanDetails: time.Second, Submission: time.Second}, 2},
		{"all disabled", LatencyConfig{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, latencyOrderWarnings(tt.latency), tt.want)
		})
	}
}
