package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Providers []ProviderConfig
	Catalog   CatalogConfig
	Latency   LatencyConfig
	Selection SelectionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

// ProviderConfig describes one upstream insurer integration
type ProviderConfig struct {
	ID      string
	Name    string
	Logo    string
	BaseURL string
	APIKey  string
}

// CatalogConfig holds plan normalization settings
type CatalogConfig struct {
	INRConversionRate float64
}

// LatencyConfig holds the simulated round-trip time of each provider call
type LatencyConfig struct {
	Plans       time.Duration
	PlanDetails time.Duration
	Submission  time.Duration
	Providers   time.Duration
}

// SelectionConfig holds submission settings
type SelectionConfig struct {
	ReferenceTTL time.Duration
}

const DefaultAPIKey = "demo-key"

type providerDefaults struct {
	id, envPrefix, name, logo, baseURL string
}

var knownProviders = []providerDefaults{
	{"hdfc", "HDFC", "HDFC ERGO Health Insurance", "hdfc-logo.png", "https://api.hdfcergo.com/insurance/v1"},
	{"care", "CARE", "Care Health Insurance", "care-logo.png", "https://api.careinsurance.com/v1"},
	{"bajaj", "BAJAJ", "Bajaj Allianz General Insurance", "bajaj-logo.png", "https://api.bajajallianz.com/insurance/v1"},
	{"icici", "ICICI", "ICICI Lombard General Insurance", "icici-logo.png", "https://api.icicilombard.com/api/v1"},
	{"goDigit", "GODIGIT", "Go Digit General Insurance", "godigit-logo.png", "https://api.godigit.com/v1"},
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Catalog: CatalogConfig{
			INRConversionRate: getEnvAsFloat("INR_CONVERSION_RATE", 83),
		},
		Latency: LatencyConfig{
			Plans:       getEnvAsMillis("LATENCY_PLANS_MS", 1000),
			PlanDetails: getEnvAsMillis("LATENCY_PLAN_DETAILS_MS", 800),
			Submission:  getEnvAsMillis("LATENCY_SUBMISSION_MS", 1200),
			Providers:   getEnvAsMillis("LATENCY_PROVIDERS_MS", 500),
		},
		Selection: SelectionConfig{
			ReferenceTTL: time.Duration(getEnvAsInt("REFERENCE_TTL_MINUTES", 60)) * time.Minute,
		},
	}

	for _, p := range knownProviders {
		cfg.Providers = append(cfg.Providers, ProviderConfig{
			ID:      p.id,
			Name:    p.name,
			Logo:    p.logo,
			BaseURL: getEnv(p.envPrefix+"_API_BASE_URL", p.baseURL),
			APIKey:  getEnv(p.envPrefix+"_API_KEY", DefaultAPIKey),
		})
	}

	for _, w := range latencyOrderWarnings(cfg.Latency) {
		log.Printf("Warning: %s", w)
	}

	return cfg, nil
}

// latencyOrderWarnings reports overrides where a detail lookup is not faster than the list fetch
// or a submission is not slower than it.
func latencyOrderWarnings(l LatencyConfig) []string {
	var warnings []string
	if l.PlanDetails >= l.Plans && l.Plans > 0 {
		warnings = append(warnings, fmt.Sprintf("LATENCY_PLAN_DETAILS_MS (%s) should be below LATENCY_PLANS_MS (%s)", l.PlanDetails, l.Plans))
	}
	if l.Submission <= l.Plans && l.Submission > 0 {
		warnings = append(warnings, fmt.Sprintf("LATENCY_SUBMISSION_MS (%s) should be above LATENCY_PLANS_MS (%s)", l.Submission, l.Plans))
	}
	return warnings
}

// Provider returns the configuration of the upstream with the given id.
func (c *Config) Provider(id string) (ProviderConfig, bool) {
	for _, p := range c.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return ProviderConfig{}, false
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || value <= 0 {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsMillis(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultValue)) * time.Millisecond
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
