package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. Paths ending in "/"
// match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns per-endpoint limits. LLM-backed and
// crawling endpoints get the strictest budgets since each request costs
// real money or bandwidth.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// LLM-backed endpoints
		{Path: "/chat", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/startup-ideas/", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},

		// External page fetching
		{Path: "/resources/refresh-metadata", Method: "POST", Limit: 4, Window: time.Hour, Burst: 1},
		{Path: "/resources/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Auth endpoints, kept tight against credential stuffing
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Recommendation scoring is pure CPU but still bounded
		{Path: "/recommendations", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/roadmaps", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
