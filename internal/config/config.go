package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Market   MarketConfig
	Analysis AnalysisConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// MarketConfig holds market-data-provider configuration
type MarketConfig struct {
	// BaseURL is the root of the Yahoo Finance chart API. Overridable so
	// tests can point the client at a local server.
	BaseURL string

	// Timezone is the canonical market timezone. Every date comparison in
	// the engine (range filtering, dividend inclusion, year grouping) runs
	// in this location to avoid off-by-one-day errors at range boundaries.
	Timezone *time.Location
}

// AnalysisConfig holds the fixed parameters of the metrics engine
type AnalysisConfig struct {
	// BenchmarkSymbol is the market index used for beta (S&P 500 by default).
	BenchmarkSymbol string

	// RiskFreeRate is the annual risk-free rate used for the Sharpe ratio.
	RiskFreeRate float64
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	tzName := getEnv("MARKET_TIMEZONE", "America/New_York")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid MARKET_TIMEZONE %q: %w", tzName, err)
	}

	riskFree, err := getEnvFloat("RISK_FREE_RATE", 0.02)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Market: MarketConfig{
			BaseURL:  getEnv("MARKET_DATA_BASE_URL", "https://query1.finance.yahoo.com"),
			Timezone: loc,
		},
		Analysis: AnalysisConfig{
			BenchmarkSymbol: getEnv("BENCHMARK_SYMBOL", "^GSPC"),
			RiskFreeRate:    riskFree,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets an environment variable parsed as float64 or returns a default value
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
